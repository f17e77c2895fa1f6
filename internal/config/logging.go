package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a logging.level value onto a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logging.level %q is not one of debug, info, warn, error, disabled", level)
	}
}

// NewLogger builds the root logger for a command. Console format writes the
// human readable output used during development; json writes one object per line.
func NewLogger(lc LoggingConfig, out io.Writer) zerolog.Logger {
	level, err := ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if lc.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()
}
