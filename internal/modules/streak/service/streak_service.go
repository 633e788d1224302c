package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
	streakout "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/port/out"
	"github.com/abhishekmishra/streak-dot-txt/internal/platform/clock"
)

// Snapshot couples a loaded streak with its resolved path and a flag for
// whether today's date carries a tick.
type Snapshot struct {
	Streak      *domain.Streak
	Path        string
	TickedToday bool
}

type StreakService struct {
	clock     clock.Clock
	store     streakout.StreakStore
	projector streakout.StreakIndexProjector
}

func NewStreakService(clock clock.Clock, store streakout.StreakStore, projector streakout.StreakIndexProjector) *StreakService {
	return &StreakService{clock: clock, store: store, projector: projector}
}

// resolve loads a streak by explicit path, or by fuzzy name when no path is
// given.
func (s *StreakService) resolve(ctx context.Context, ref Ref) (*domain.Streak, string, error) {
	path := strings.TrimSpace(ref.Path)
	if path == "" {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			return nil, "", fmt.Errorf("a file path or a streak name is required")
		}
		found, err := s.store.Find(ctx, name)
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	streak, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, "", err
	}
	return streak, path, nil
}

// Ref addresses a streak by path or fuzzy name.
type Ref struct {
	Path string
	Name string
}

// Get loads a streak and caches fresh statistics on it.
func (s *StreakService) Get(ctx context.Context, ref Ref) (Snapshot, error) {
	streak, path, err := s.resolve(ctx, ref)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.refreshStats(streak); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(streak, path), nil
}

// Create writes a new header-only streak file and projects it.
func (s *StreakService) Create(ctx context.Context, name string, tickType domain.TickType) (Snapshot, error) {
	streak, path, err := s.store.Create(ctx, name, tickType)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.refreshStats(streak); err != nil {
		return Snapshot{}, err
	}
	if err := s.project(ctx, streak, path); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(streak, path), nil
}

// Mark ticks the current period. A second call in the same period is a
// no-op: nothing is written and marked comes back false.
func (s *StreakService) Mark(ctx context.Context, ref Ref) (Snapshot, bool, error) {
	streak, path, err := s.resolve(ctx, ref)
	if err != nil {
		return Snapshot{}, false, err
	}
	marked, err := streak.MarkCurrentPeriod(s.clock.Now())
	if err != nil {
		return Snapshot{}, false, err
	}
	if marked {
		if err := s.store.Save(ctx, streak, path); err != nil {
			return Snapshot{}, false, err
		}
	}
	if err := s.refreshStats(streak); err != nil {
		return Snapshot{}, false, err
	}
	if marked {
		if err := s.project(ctx, streak, path); err != nil {
			return Snapshot{}, false, err
		}
	}
	return s.snapshot(streak, path), marked, nil
}

// AddTick appends a raw tick without any duplicate check and persists.
func (s *StreakService) AddTick(ctx context.Context, ref Ref, rawValue string) (Snapshot, error) {
	streak, path, err := s.resolve(ctx, ref)
	if err != nil {
		return Snapshot{}, err
	}
	if err := streak.AddTick(rawValue); err != nil {
		return Snapshot{}, err
	}
	if err := s.store.Save(ctx, streak, path); err != nil {
		return Snapshot{}, err
	}
	if err := s.refreshStats(streak); err != nil {
		return Snapshot{}, err
	}
	if err := s.project(ctx, streak, path); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(streak, path), nil
}

// SetMetadata updates a header entry and persists. Setting tick to anything
// outside Daily/Weekly fails before any state changes.
func (s *StreakService) SetMetadata(ctx context.Context, ref Ref, key, value string) (Snapshot, error) {
	streak, path, err := s.resolve(ctx, ref)
	if err != nil {
		return Snapshot{}, err
	}
	if err := streak.SetMetadata(key, value); err != nil {
		return Snapshot{}, err
	}
	if err := s.store.Save(ctx, streak, path); err != nil {
		return Snapshot{}, err
	}
	if err := s.refreshStats(streak); err != nil {
		return Snapshot{}, err
	}
	if err := s.project(ctx, streak, path); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(streak, path), nil
}

// List loads every streak file with fresh statistics.
func (s *StreakService) List(ctx context.Context) ([]Snapshot, error) {
	paths, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Snapshot, 0, len(paths))
	for _, path := range paths {
		streak, err := s.store.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		if err := s.refreshStats(streak); err != nil {
			return nil, err
		}
		out = append(out, s.snapshot(streak, path))
	}
	return out, nil
}

// Reindex rebuilds the projection from the streak files.
func (s *StreakService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	snapshots, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, snap := range snapshots {
		if err := s.project(ctx, snap.Streak, snap.Path); err != nil {
			return err
		}
	}
	return nil
}

func (s *StreakService) refreshStats(streak *domain.Streak) error {
	stats, err := domain.CalculateStats(streak, s.clock.Now())
	if err != nil {
		return err
	}
	streak.Stats = stats
	return nil
}

func (s *StreakService) snapshot(streak *domain.Streak, path string) Snapshot {
	return Snapshot{
		Streak:      streak,
		Path:        path,
		TickedToday: streak.TickedOn(s.clock.Now()),
	}
}

func (s *StreakService) project(ctx context.Context, streak *domain.Streak, path string) error {
	return s.projector.Upsert(ctx, streakout.IndexEntry{
		Path:          path,
		Name:          streak.Name,
		TickType:      string(streak.TickType),
		TotalPeriods:  streak.Stats.TotalPeriods,
		TickedPeriods: streak.Stats.TickedPeriods,
		CurrentStreak: streak.Stats.CurrentStreak,
		LongestStreak: streak.Stats.LongestStreak,
		TickAverage:   streak.Stats.TickAverage,
		UpdatedAt:     s.clock.Now(),
	})
}
