package domain

import (
	"fmt"
	"time"

	apperrors "github.com/abhishekmishra/streak-dot-txt/internal/platform/errors"
)

type TickType string

const (
	TickDaily  TickType = "Daily"
	TickWeekly TickType = "Weekly"
)

// tickTimeLayout is the shape of tokens this tool writes itself. Tokens read
// from files keep whatever shape they arrived in.
const tickTimeLayout = "2006-01-02T15:04:05"

func (t TickType) Validate() error {
	switch t {
	case TickDaily, TickWeekly:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedTickType, string(t))
	}
}

// Period is the number of days between expected ticks.
func (t TickType) Period() (int, error) {
	switch t {
	case TickDaily:
		return 1, nil
	case TickWeekly:
		return 7, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedTickType, string(t))
	}
}

// MetaField is one header entry. Metadata keeps file order so encoding
// reproduces the header apart from refreshed name/tick values.
type MetaField struct {
	Key   string
	Value string
}

type Metadata []MetaField

func (m Metadata) Get(key string) (string, bool) {
	for _, field := range m {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Set updates the field in place when the key exists, preserving its
// position, and appends otherwise.
func (m *Metadata) Set(key, value string) {
	for i, field := range *m {
		if field.Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, MetaField{Key: key, Value: value})
}

// Streak is the aggregate of a name, tick type, metadata, and the ordered
// tick history. Ticks stay in file order: the codec and AddTick never sort or
// deduplicate.
type Streak struct {
	Name     string
	TickType TickType
	Metadata Metadata
	Ticks    []Tick

	// Stats is a cached snapshot, not authoritative. Recompute via
	// CalculateStats after any tick mutation.
	Stats Stats
}

// New creates a fresh streak with name and tick mirrored into metadata.
func New(name string, tickType TickType) (*Streak, error) {
	if err := tickType.Validate(); err != nil {
		return nil, err
	}
	s := &Streak{Name: name, TickType: tickType}
	s.Metadata.Set("name", name)
	s.Metadata.Set("tick", string(tickType))
	return s, nil
}

// AddTick parses and appends unconditionally: no duplicate check, no
// reordering. Keeping ticks chronological is the caller's job; the stats
// anchor is the first tick in file order.
func (s *Streak) AddTick(raw string) error {
	tick, err := NewTick(raw)
	if err != nil {
		return err
	}
	s.Ticks = append(s.Ticks, tick)
	return nil
}

// MarkCurrentPeriod ticks the period containing now unless that period is
// already ticked, returning true when a tick was appended. Daily compares
// calendar dates; Weekly builds a Monday-aligned week-start tick and compares
// ISO week-and-year. This is the aggregate's only idempotence guard.
func (s *Streak) MarkCurrentPeriod(now time.Time) (bool, error) {
	switch s.TickType {
	case TickDaily:
		candidate, err := NewTick(now.Format(tickTimeLayout))
		if err != nil {
			return false, err
		}
		for _, tick := range s.Ticks {
			if tick.Date().Equal(candidate.Date()) {
				return false, nil
			}
		}
		s.Ticks = append(s.Ticks, candidate)
		return true, nil

	case TickWeekly:
		monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
		candidate, err := NewTick(monday.Format(tickTimeLayout))
		if err != nil {
			return false, err
		}
		wantYear, wantWeek := candidate.ISOWeek()
		for _, tick := range s.Ticks {
			year, week := tick.ISOWeek()
			if year == wantYear && week == wantWeek {
				return false, nil
			}
		}
		s.Ticks = append(s.Ticks, candidate)
		return true, nil

	default:
		return false, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedTickType, string(s.TickType))
	}
}

// SetMetadata updates a header entry. The name and tick keys mirror into the
// Name/TickType fields; an invalid tick value is rejected before any state
// changes.
func (s *Streak) SetMetadata(key, value string) error {
	switch key {
	case "tick":
		if err := TickType(value).Validate(); err != nil {
			return err
		}
		s.TickType = TickType(value)
	case "name":
		s.Name = value
	}
	s.Metadata.Set(key, value)
	return nil
}

// Years lists the distinct years ticks fall in, in first-seen order.
func (s *Streak) Years() []int {
	var years []int
	seen := map[int]bool{}
	for _, tick := range s.Ticks {
		if year := tick.Year(); !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	return years
}

// TickedOn reports whether any tick falls on the given calendar date.
func (s *Streak) TickedOn(date time.Time) bool {
	want := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for _, tick := range s.Ticks {
		if tick.Date().Equal(want) {
			return true
		}
	}
	return false
}
