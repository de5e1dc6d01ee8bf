// Package logging wires zerolog the way the rest of this stack does:
// global level from config, an optional pretty console writer for local
// runs.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mbp10/internal/config"
)

// Logger is the package's logging handle.
type Logger = zerolog.Logger

// New builds a Logger from cfg.
func New(cfg config.Config) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	var l zerolog.Logger
	if cfg.LogPretty {
		l = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		l = log.Logger
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	return l
}
