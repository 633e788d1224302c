// Package calendar renders a streak's tick history as per-month grids, one
// line per week, Monday first. Ticked days show a check mark, past unticked
// days a cross, and today is highlighted.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/dto"
	"github.com/abhishekmishra/streak-dot-txt/internal/ui/theme"
)

// Every day cell occupies cellWidth terminal columns, including the gap.
const cellWidth = 6

type dateKey struct {
	year  int
	month int
	day   int
}

// Year draws every month of today's year up to and including the current
// month.
func Year(ticks []dto.TickOutput, today time.Time) string {
	ticked := tickSet(ticks)
	var months []string
	for month := time.January; month <= today.Month(); month++ {
		months = append(months, renderMonth(today.Year(), month, ticked, today))
	}
	return strings.Join(months, "\n")
}

// Month draws a single month grid.
func Month(ticks []dto.TickOutput, year int, month time.Month, today time.Time) string {
	return renderMonth(year, month, tickSet(ticks), today)
}

func renderMonth(year int, month time.Month, ticked map[dateKey]bool, today time.Time) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	firstCol := (int(first.Weekday()) + 6) % 7 // Monday-based column

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(first.Format("January 2006")) + "\n")
	sb.WriteString(theme.Muted.Render("Mon   Tue   Wed   Thu   Fri   Sat   Sun") + "\n")

	col := 0
	for ; col < firstCol; col++ {
		sb.WriteString(strings.Repeat(" ", cellWidth))
	}
	for day := 1; day <= daysInMonth; day++ {
		sb.WriteString(cell(year, month, day, ticked, today))
		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

func cell(year int, month time.Month, day int, ticked map[dateKey]bool, today time.Time) string {
	isTicked := ticked[dateKey{year: year, month: int(month), day: day}]
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	style := theme.DayFuture
	mark := "-"
	switch {
	case date.After(todayDate):
		// future day, muted dash
	case date.Equal(todayDate):
		style = theme.DayToday
		if isTicked {
			mark = "✓"
		} else {
			mark = " "
		}
	case isTicked:
		style = theme.DayTicked
		mark = "✓"
	default:
		style = theme.DayMissed
		mark = "✖"
	}
	return style.Render(fmt.Sprintf("%2d %s", day, mark)) + "  "
}

func tickSet(ticks []dto.TickOutput) map[dateKey]bool {
	out := make(map[dateKey]bool, len(ticks))
	for _, tick := range ticks {
		out[dateKey{year: tick.Year, month: tick.Month, day: tick.Day}] = true
	}
	return out
}
