// Package codec reads and writes the streak.txt wire format: an optional
// header block delimited by lines containing exactly "---", followed by one
// raw tick token per line.
package codec

import (
	"fmt"
	"strings"

	"github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/domain"
	apperrors "github.com/abhishekmishra/streak-dot-txt/internal/platform/errors"
)

const delimiter = "---"

// Decode parses text into a Streak. Every line of a headerless file is
// classified as a tick, including the first. Blank lines in the tick region
// are skipped. An unknown tick type in the header fails immediately; an
// absent tick key leaves the period unresolved, and statistics fail until it
// is set.
func Decode(text string) (*domain.Streak, error) {
	streak := &domain.Streak{}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	i := 0
	if len(lines) > 0 && lines[0] == delimiter {
		i = 1
		closed := false
		for ; i < len(lines); i++ {
			if lines[i] == delimiter {
				i++
				closed = true
				break
			}
			key, value, found := strings.Cut(lines[i], ": ")
			if !found {
				return nil, fmt.Errorf("%w: header line %d has no %q separator", apperrors.ErrParse, i+1, ": ")
			}
			streak.Metadata.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		}
		if !closed {
			return nil, fmt.Errorf("%w: header block not closed with %q", apperrors.ErrParse, delimiter)
		}
	}

	if name, ok := streak.Metadata.Get("name"); ok {
		streak.Name = name
	}
	if tick, ok := streak.Metadata.Get("tick"); ok {
		tickType := domain.TickType(tick)
		if err := tickType.Validate(); err != nil {
			return nil, err
		}
		streak.TickType = tickType
	}

	for ; i < len(lines); i++ {
		raw := strings.TrimSpace(lines[i])
		if raw == "" {
			continue
		}
		if err := streak.AddTick(raw); err != nil {
			return nil, err
		}
	}
	return streak, nil
}

// Encode renders the streak back to text. Metadata keeps its stored order,
// with the name and tick entries refreshed from the streak's current fields
// so stale header values are overwritten. Tick raw values are written
// verbatim in append order.
func Encode(streak *domain.Streak) string {
	if streak.Name != "" {
		streak.Metadata.Set("name", streak.Name)
	}
	if streak.TickType != "" {
		streak.Metadata.Set("tick", string(streak.TickType))
	}

	var sb strings.Builder
	sb.WriteString(delimiter + "\n")
	for _, field := range streak.Metadata {
		sb.WriteString(field.Key + ": " + field.Value + "\n")
	}
	sb.WriteString(delimiter + "\n")
	for _, tick := range streak.Ticks {
		sb.WriteString(tick.RawValue + "\n")
	}
	return sb.String()
}
