// Package logger builds the zerolog logger shared by the seeder.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration
type Config struct {
	Output io.Writer // stderr when nil, leaving stdout to the summary
	Level  string    // debug, info, warn, error, disabled
	Pretty bool      // human-readable console lines instead of JSON
}

// New creates a structured logger and sets the global level from cfg
func New(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(writer(cfg)).
		With().
		Timestamp().
		Caller().
		Logger()
}

// parseLevel maps a level name to zerolog, falling back to info for empty
// or unknown names
func parseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func writer(cfg Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !cfg.Pretty {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
}

// SetGlobalLogger sets the package-level logger
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}
