package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger returns a logger that writes to the test log at the given
// level, so that output is only shown for failed or verbose tests.
func TestLogger(t testing.TB, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(level).With().Timestamp().Logger()
}
