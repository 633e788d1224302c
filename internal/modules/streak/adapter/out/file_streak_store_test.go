package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/adapter/out"
	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
	apperrors "github.com/abhishekmishra/streak-dot-txt/internal/platform/errors"
)

func TestCreateLoadSaveCycle(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := out.NewFileStreakStore(dir)
	ctx := context.Background()

	created, path, err := store.Create(ctx, "Morning Run", domain.TickDaily)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Base(path) != "streak-morning-run.txt" {
		t.Fatalf("file name must be slugged, got %s", filepath.Base(path))
	}

	loaded, err := store.Load(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != created.Name || loaded.TickType != created.TickType {
		t.Fatalf("loaded streak differs: %+v vs %+v", loaded, created)
	}
	if len(loaded.Ticks) != 0 {
		t.Fatalf("fresh streak must have no ticks, got %d", len(loaded.Ticks))
	}

	if err := loaded.AddTick("2025-01-01"); err != nil {
		t.Fatalf("add tick: %v", err)
	}
	if err := store.Save(ctx, loaded, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, err := store.Load(ctx, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Ticks) != 1 || reloaded.Ticks[0].RawValue != "2025-01-01" {
		t.Fatalf("saved tick must survive reload, got %+v", reloaded.Ticks)
	}
}

func TestCreateExistingFileFails(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := out.NewFileStreakStore(dir)
	ctx := context.Background()

	if _, _, err := store.Create(ctx, "run", domain.TickDaily); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, _, err := store.Create(ctx, "run", domain.TickDaily); !errors.Is(err, apperrors.ErrAlreadyExists) {
		t.Fatalf("second create must fail with already-exists, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	store := out.NewFileStreakStore(t.TempDir())
	if _, err := store.Load(context.Background(), "/does/not/exist.txt"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing file must map to not-found, got %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "streak-bad.txt")
	if err := os.WriteFile(path, []byte("---\nno separator here\n---\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := out.NewFileStreakStore(dir)
	if _, err := store.Load(context.Background(), path); !errors.Is(err, apperrors.ErrParse) {
		t.Fatalf("corrupt header must surface parse error, got %v", err)
	}
}

func TestFindFuzzyMatching(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := out.NewFileStreakStore(dir)
	ctx := context.Background()

	if _, _, err := store.Create(ctx, "run", domain.TickDaily); err != nil {
		t.Fatalf("create run: %v", err)
	}
	if _, _, err := store.Create(ctx, "running", domain.TickDaily); err != nil {
		t.Fatalf("create running: %v", err)
	}
	if _, _, err := store.Create(ctx, "reading", domain.TickDaily); err != nil {
		t.Fatalf("create reading: %v", err)
	}

	path, err := store.Find(ctx, "READ")
	if err != nil {
		t.Fatalf("find must be case-insensitive: %v", err)
	}
	if filepath.Base(path) != "streak-reading.txt" {
		t.Fatalf("wrong match: %s", path)
	}

	_, err = store.Find(ctx, "run")
	var ambiguous *apperrors.AmbiguousMatchError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected ambiguous match, got %v", err)
	}
	if !errors.Is(err, apperrors.ErrAmbiguousMatch) {
		t.Fatalf("ambiguous error must unwrap to the sentinel")
	}
	if len(ambiguous.Candidates) != 2 {
		t.Fatalf("both run streaks must be listed, got %v", ambiguous.Candidates)
	}

	if _, err := store.Find(ctx, "yoga"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("no match must be not-found, got %v", err)
	}
}

func TestListSortedByPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := out.NewFileStreakStore(dir)
	ctx := context.Background()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		if _, _, err := store.Create(ctx, name, domain.TickDaily); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	// A stray file without the streak prefix is invisible to List.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	paths, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 streak files, got %d", len(paths))
	}
	want := []string{"streak-alpha.txt", "streak-mike.txt", "streak-zulu.txt"}
	for i, path := range paths {
		if filepath.Base(path) != want[i] {
			t.Fatalf("list order: got %s at %d, want %s", filepath.Base(path), i, want[i])
		}
	}
}
