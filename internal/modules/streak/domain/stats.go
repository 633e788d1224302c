package domain

import "time"

// Stats is a derived snapshot of streak performance. Periods are days for
// Daily streaks and weeks for Weekly ones.
type Stats struct {
	TotalPeriods    int
	TickedPeriods   int
	UntickedPeriods int
	CurrentStreak   int
	LongestStreak   int
	TickAverage     float64
}

// CalculateStats derives the snapshot from the streak's ticks and period as
// of today. It is a pure function; the caller decides whether to keep the
// result in the streak's cached Stats field.
//
// The anchor is the first tick in file order, not the chronological minimum.
// Appending out-of-order ticks shifts TotalPeriods; keeping ticks roughly
// chronological is a documented precondition on callers, not an enforced
// invariant.
func CalculateStats(s *Streak, today time.Time) (Stats, error) {
	period, err := s.TickType.Period()
	if err != nil {
		return Stats{}, err
	}
	if len(s.Ticks) == 0 {
		return Stats{}, nil
	}

	anchor := s.Ticks[0].Date()
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	elapsedDays := int(end.Sub(anchor).Hours() / 24)

	stats := Stats{
		TotalPeriods:  elapsedDays/period + 1,
		TickedPeriods: len(s.Ticks), // duplicate dates count multiple times
	}
	stats.UntickedPeriods = stats.TotalPeriods - stats.TickedPeriods

	tickDates := make(map[time.Time]struct{}, len(s.Ticks))
	for _, tick := range s.Ticks {
		tickDates[tick.Date()] = struct{}{}
	}

	// Walk period-aligned slots from the anchor. A hit extends the run only
	// when the previous hit was exactly one period earlier; a missed slot
	// zeroes it. The final slot is the period containing today and is still
	// open, so missing it does not break the run; any earlier gap does.
	run := 0
	var lastHit time.Time
	haveHit := false
	for n := 0; n < stats.TotalPeriods; n++ {
		candidate := anchor.AddDate(0, 0, n*period)
		if _, ok := tickDates[candidate]; ok {
			if !haveHit || int(candidate.Sub(lastHit).Hours()/24) == period {
				run++
			} else {
				run = 1
			}
			if run > stats.LongestStreak {
				stats.LongestStreak = run
			}
			lastHit = candidate
			haveHit = true
		} else if n < stats.TotalPeriods-1 {
			run = 0
		}
	}
	stats.CurrentStreak = run

	if stats.TotalPeriods > 0 {
		stats.TickAverage = float64(stats.TickedPeriods) / float64(stats.TotalPeriods)
	}
	return stats, nil
}
