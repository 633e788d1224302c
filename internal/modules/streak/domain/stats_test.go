package domain_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
	apperrors "github.com/abhishekmishra/streak-dot-txt/internal/platform/errors"
)

func dailyStreak(t *testing.T, raws ...string) *domain.Streak {
	t.Helper()
	streak, err := domain.New("test", domain.TickDaily)
	if err != nil {
		t.Fatalf("new streak: %v", err)
	}
	for _, raw := range raws {
		if err := streak.AddTick(raw); err != nil {
			t.Fatalf("add tick %s: %v", raw, err)
		}
	}
	return streak
}

func weeklyStreak(t *testing.T, raws ...string) *domain.Streak {
	t.Helper()
	streak, err := domain.New("test", domain.TickWeekly)
	if err != nil {
		t.Fatalf("new streak: %v", err)
	}
	for _, raw := range raws {
		if err := streak.AddTick(raw); err != nil {
			t.Fatalf("add tick %s: %v", raw, err)
		}
	}
	return streak
}

func TestCalculateStatsZeroTicks(t *testing.T) {
	t.Parallel()
	streak, err := domain.New("fresh", domain.TickDaily)
	if err != nil {
		t.Fatalf("new streak: %v", err)
	}
	stats, err := domain.CalculateStats(streak, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if stats != (domain.Stats{}) {
		t.Fatalf("freshly created streak must have all-zero stats, got %+v", stats)
	}
}

func TestCalculateStatsUnresolvedTickTypeFails(t *testing.T) {
	t.Parallel()
	streak := &domain.Streak{}
	if err := streak.AddTick("2025-01-01"); err != nil {
		t.Fatalf("add tick: %v", err)
	}
	if _, err := domain.CalculateStats(streak, time.Now()); !errors.Is(err, apperrors.ErrUnsupportedTickType) {
		t.Fatalf("missing tick type must fail stats, got %v", err)
	}
}

func TestCalculateStatsTwoDayRunTodayStillOpen(t *testing.T) {
	t.Parallel()
	streak := dailyStreak(t, "2025-01-01T00:00:00", "2025-01-02T00:00:00")
	stats, err := domain.CalculateStats(streak, time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if stats.TotalPeriods != 3 || stats.TickedPeriods != 2 || stats.UntickedPeriods != 1 {
		t.Fatalf("period counts: %+v", stats)
	}
	if stats.CurrentStreak != 2 || stats.LongestStreak != 2 {
		t.Fatalf("today being unticked must not break the run yet: %+v", stats)
	}
	if math.Abs(stats.TickAverage-2.0/3.0) > 1e-9 {
		t.Fatalf("tick average: got %f", stats.TickAverage)
	}
}

func TestCalculateStatsTrailingGapBreaksRun(t *testing.T) {
	t.Parallel()
	streak := dailyStreak(t, "2025-01-01T00:00:00", "2025-01-02T00:00:00")
	stats, err := domain.CalculateStats(streak, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if stats.TotalPeriods != 5 {
		t.Fatalf("total periods: got %d", stats.TotalPeriods)
	}
	if stats.CurrentStreak != 0 {
		t.Fatalf("gap on days 3 and 4 must zero the current streak, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Fatalf("longest run of 2 must be retained, got %d", stats.LongestStreak)
	}
	if math.Abs(stats.TickAverage-0.4) > 1e-9 {
		t.Fatalf("tick average: got %f", stats.TickAverage)
	}
}

func TestCalculateStatsMidGapThenRestart(t *testing.T) {
	t.Parallel()
	streak := dailyStreak(t, "2025-01-01", "2025-01-02", "2025-01-04")
	stats, err := domain.CalculateStats(streak, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if stats.CurrentStreak != 1 {
		t.Fatalf("run restarts after the gap, got current %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Fatalf("longest stays 2, got %d", stats.LongestStreak)
	}
}

func TestCalculateStatsWeeklyAlignment(t *testing.T) {
	t.Parallel()
	// Mondays exactly 7 days apart extend the streak.
	aligned := weeklyStreak(t, "2025-01-06", "2025-01-13")
	stats, err := domain.CalculateStats(aligned, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate aligned: %v", err)
	}
	if stats.TotalPeriods != 2 || stats.CurrentStreak != 2 || stats.LongestStreak != 2 {
		t.Fatalf("7-day spacing must extend the streak: %+v", stats)
	}

	// 8 days apart: the second tick misses the period-aligned slot.
	eight := weeklyStreak(t, "2025-01-06", "2025-01-14")
	stats, err = domain.CalculateStats(eight, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate 8-day: %v", err)
	}
	if stats.LongestStreak != 1 {
		t.Fatalf("8-day spacing must not extend the streak: %+v", stats)
	}

	// 6 days apart: likewise off the 7-day grid.
	six := weeklyStreak(t, "2025-01-06", "2025-01-12")
	stats, err = domain.CalculateStats(six, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate 6-day: %v", err)
	}
	if stats.LongestStreak != 1 {
		t.Fatalf("6-day spacing must not extend the streak: %+v", stats)
	}
}

func TestCalculateStatsDuplicatesCountInTickedPeriods(t *testing.T) {
	t.Parallel()
	streak := dailyStreak(t, "2025-01-01", "2025-01-01", "2025-01-02")
	stats, err := domain.CalculateStats(streak, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if stats.TickedPeriods != 3 {
		t.Fatalf("duplicate dates count multiple times, got %d", stats.TickedPeriods)
	}
	if stats.TotalPeriods != 2 {
		t.Fatalf("total periods: got %d", stats.TotalPeriods)
	}
	if stats.UntickedPeriods != -1 {
		t.Fatalf("unticked is total minus ticked, even when negative: got %d", stats.UntickedPeriods)
	}
	if stats.CurrentStreak != 2 || stats.LongestStreak != 2 {
		t.Fatalf("distinct dates drive the walk: %+v", stats)
	}
}

func TestCalculateStatsAnchorIsFirstTickInFileOrder(t *testing.T) {
	t.Parallel()
	streak := dailyStreak(t, "2025-01-03", "2025-01-01", "2025-01-02")
	stats, err := domain.CalculateStats(streak, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	// Anchor is Jan 3, not the chronological minimum Jan 1.
	if stats.TotalPeriods != 1 {
		t.Fatalf("anchor must be the first tick in file order, got total %d", stats.TotalPeriods)
	}
}
