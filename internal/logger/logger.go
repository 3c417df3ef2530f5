package logger

import (
	"os"
	"token-arena/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the service logger and installs it as the global zerolog logger
// used by the request middleware.
func New(cfg config.LogConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if cfg.Pretty {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		l = zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
	} else {
		l = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}

	log.Logger = l
	return l
}
