package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger for CLI use: console output on stderr,
// warnings only unless debug is enabled.
func Setup(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	log.Logger = logger
	zerolog.SetGlobalLevel(level)

	return logger
}
