package out

import (
	"context"
	"time"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
)

// StreakStore is the persistence boundary for streak files. Implementations
// do whole-file read-then-overwrite with no locking; concurrent writers race
// and the last one wins, which is accepted for a single-user local tool.
type StreakStore interface {
	Load(ctx context.Context, path string) (*domain.Streak, error)
	Save(ctx context.Context, streak *domain.Streak, path string) error
	Create(ctx context.Context, name string, tickType domain.TickType) (*domain.Streak, string, error)
	Find(ctx context.Context, fuzzyName string) (string, error)
	List(ctx context.Context) ([]string, error)
}

// IndexEntry is the projected row for one streak file.
type IndexEntry struct {
	Path          string
	Name          string
	TickType      string
	TotalPeriods  int
	TickedPeriods int
	CurrentStreak int
	LongestStreak int
	TickAverage   float64
	UpdatedAt     time.Time
}

// StreakIndexProjector maintains a derived, rebuildable index of streak
// files. The text files stay authoritative; the projection only serves
// listings and can be dropped and rebuilt at any time.
type StreakIndexProjector interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, entry IndexEntry) error
}
