package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	streakout "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteStreakProjector keeps a rebuildable index of streak files for fast
// listings. The text files stay the system of record.
type SQLiteStreakProjector struct {
	db *sql.DB
}

func NewSQLiteStreakProjector(dbPath string) (streakout.StreakIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteStreakProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteStreakProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS streaks (
  path TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  tick TEXT NOT NULL,
  total_periods INTEGER NOT NULL,
  ticked_periods INTEGER NOT NULL,
  current_streak INTEGER NOT NULL,
  longest_streak INTEGER NOT NULL,
  tick_average REAL NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create streaks table: %w", err)
	}
	return nil
}

func (s *SQLiteStreakProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM streaks`); err != nil {
		return fmt.Errorf("reset streaks: %w", err)
	}
	return nil
}

func (s *SQLiteStreakProjector) Upsert(ctx context.Context, entry streakout.IndexEntry) error {
	const stmt = `
INSERT INTO streaks (path, name, tick, total_periods, ticked_periods, current_streak, longest_streak, tick_average, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
  name=excluded.name,
  tick=excluded.tick,
  total_periods=excluded.total_periods,
  ticked_periods=excluded.ticked_periods,
  current_streak=excluded.current_streak,
  longest_streak=excluded.longest_streak,
  tick_average=excluded.tick_average,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.Path,
		entry.Name,
		entry.TickType,
		entry.TotalPeriods,
		entry.TickedPeriods,
		entry.CurrentStreak,
		entry.LongestStreak,
		entry.TickAverage,
		entry.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("upsert streak: %w", err)
	}
	return nil
}
