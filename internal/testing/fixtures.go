package testing

import (
	"time"

	"github.com/rs/zerolog"
)

// FixedNow is the reference "today" used by generator tests
var FixedNow = time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

// Clock returns a clock function that always reports now
func Clock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// NopLogger returns a disabled logger
func NopLogger() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}
