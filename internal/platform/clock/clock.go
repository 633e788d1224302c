package clock

import "time"

// Clock abstracts wall-clock time so marking and statistics stay
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now returns local time. Tick dates are calendar dates in the user's zone,
// so "today" follows the local clock rather than UTC.
func (SystemClock) Now() time.Time {
	return time.Now()
}
