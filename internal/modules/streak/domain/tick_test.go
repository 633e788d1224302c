package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
	apperrors "github.com/abhishekmishra/streak-dot-txt/internal/platform/errors"
)

func TestNewTickAcceptedShapes(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{
		"2025-01-02",
		"2025-01-02T07:30",
		"2025-01-02T07:30:15",
		"2025-01-02T07:30:15.123456",
		"2025-01-02T07:30:15+05:30",
		"2025-01-02T07:30:15.123456789Z",
	} {
		tick, err := domain.NewTick(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if tick.RawValue != raw {
			t.Fatalf("raw value must survive verbatim, got %q", tick.RawValue)
		}
		if tick.Year() != 2025 || tick.Month() != 1 || tick.Day() != 2 {
			t.Fatalf("wrong calendar fields for %q: %d-%d-%d", raw, tick.Year(), tick.Month(), tick.Day())
		}
	}
}

func TestNewTickRejectsGarbage(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "yesterday", "02/01/2025", "2025-13-01"} {
		if _, err := domain.NewTick(raw); !errors.Is(err, apperrors.ErrParse) {
			t.Fatalf("expected parse error for %q, got %v", raw, err)
		}
	}
}

func TestTickDerivedFields(t *testing.T) {
	t.Parallel()
	// 2025-01-06 is a Monday in ISO week 2.
	tick, err := domain.NewTick("2025-01-06T23:59:59")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := tick.Weekday(); got != 0 {
		t.Fatalf("Monday must map to weekday 0, got %d", got)
	}
	if got := tick.WeekInMonth(); got != 1 {
		t.Fatalf("day 6 is in week-of-month 1, got %d", got)
	}
	if got := tick.WeekInYear(); got != 2 {
		t.Fatalf("expected ISO week 2, got %d", got)
	}
	sunday, err := domain.NewTick("2025-01-05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := sunday.Weekday(); got != 6 {
		t.Fatalf("Sunday must map to weekday 6, got %d", got)
	}
}

func TestTickDateIgnoresTimeAndZone(t *testing.T) {
	t.Parallel()
	morning, err := domain.NewTick("2025-01-02T01:00:00+05:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	evening, err := domain.NewTick("2025-01-02T23:00:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	if !morning.Date().Equal(want) || !evening.Date().Equal(want) {
		t.Fatalf("date projection must be the calendar date at UTC midnight")
	}
}
