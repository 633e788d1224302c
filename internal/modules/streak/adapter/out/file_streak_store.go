package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/codec"
	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
	streakout "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/port/out"
	apperrors "github.com/abhishekmishra/streak-dot-txt/internal/platform/errors"
	"github.com/abhishekmishra/streak-dot-txt/internal/platform/slug"
)

const (
	filePrefix = "streak-"
	fileSuffix = ".txt"
)

// FileStreakStore keeps each streak as one text file under the streaks
// directory. Writes are whole-file overwrites with no locking; last writer
// wins.
type FileStreakStore struct {
	streaksDir string
}

func NewFileStreakStore(streaksDir string) streakout.StreakStore {
	return &FileStreakStore{streaksDir: streaksDir}
}

func (s *FileStreakStore) Load(_ context.Context, path string) (*domain.Streak, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	streak, err := codec.Decode(string(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return streak, nil
}

func (s *FileStreakStore) Save(_ context.Context, streak *domain.Streak, path string) error {
	if err := os.WriteFile(path, []byte(codec.Encode(streak)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *FileStreakStore) Create(_ context.Context, name string, tickType domain.TickType) (*domain.Streak, string, error) {
	streak, err := domain.New(name, tickType)
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(s.streaksDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create streaks directory: %w", err)
	}
	path := filepath.Join(s.streaksDir, filePrefix+slug.Make(name)+fileSuffix)
	if _, err := os.Stat(path); err == nil {
		return nil, "", fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, path)
	} else if !os.IsNotExist(err) {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(codec.Encode(streak)), 0o644); err != nil {
		return nil, "", fmt.Errorf("write %s: %w", path, err)
	}
	return streak, path, nil
}

// Find matches fuzzyName as a case-insensitive substring of streak file
// names. Zero matches and multiple matches are distinct error conditions,
// never silently resolved.
func (s *FileStreakStore) Find(ctx context.Context, fuzzyName string) (string, error) {
	paths, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	needle := strings.ToLower(fuzzyName)
	var matches []string
	for _, path := range paths {
		if strings.Contains(strings.ToLower(filepath.Base(path)), needle) {
			matches = append(matches, path)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no streak matching %q", apperrors.ErrNotFound, fuzzyName)
	case 1:
		return matches[0], nil
	default:
		return "", &apperrors.AmbiguousMatchError{Name: fuzzyName, Candidates: matches}
	}
}

func (s *FileStreakStore) List(_ context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.streaksDir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, fmt.Errorf("glob streak files: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}
