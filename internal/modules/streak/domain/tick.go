package domain

import (
	"fmt"
	"time"

	apperrors "github.com/abhishekmishra/streak-dot-txt/internal/platform/errors"
)

// tickLayouts are the accepted ISO-8601 shapes for a tick token. Files
// written by older front ends carry fractional seconds or zone offsets.
var tickLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Tick is a single recorded completion event. RawValue keeps the token
// verbatim so a decode/encode cycle never reformats the file.
type Tick struct {
	RawValue string
	Instant  time.Time
}

// NewTick parses raw as an ISO-8601 date or date-time. An unparseable token
// is a construction error, never deferred.
func NewTick(raw string) (Tick, error) {
	for _, layout := range tickLayouts {
		if instant, err := time.Parse(layout, raw); err == nil {
			return Tick{RawValue: raw, Instant: instant}, nil
		}
	}
	return Tick{}, fmt.Errorf("%w: invalid tick value %q", apperrors.ErrParse, raw)
}

func (t Tick) Year() int  { return t.Instant.Year() }
func (t Tick) Month() int { return int(t.Instant.Month()) }
func (t Tick) Day() int   { return t.Instant.Day() }

// Weekday is Monday-based: Monday=0 through Sunday=6.
func (t Tick) Weekday() int {
	return (int(t.Instant.Weekday()) + 6) % 7
}

// WeekInMonth is 1-based in 7-day slices of the month.
func (t Tick) WeekInMonth() int {
	return (t.Day()-1)/7 + 1
}

// WeekInYear is the ISO 8601 week number.
func (t Tick) WeekInYear() int {
	_, week := t.Instant.ISOWeek()
	return week
}

// ISOWeek returns the ISO week-year and week number, used for weekly
// duplicate checks.
func (t Tick) ISOWeek() (year, week int) {
	return t.Instant.ISOWeek()
}

// Date is the date-only projection used for equality and grouping. It is
// normalized to UTC midnight so ticks with differing zone offsets compare by
// calendar date.
func (t Tick) Date() time.Time {
	return time.Date(t.Instant.Year(), t.Instant.Month(), t.Instant.Day(), 0, 0, 0, 0, time.UTC)
}
