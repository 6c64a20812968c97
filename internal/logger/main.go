package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Package logger implements the diagnostic logger.

// Init the zerolog logger.
// Everything is written to stderr: stdout belongs to the generated string
// and must stay clean for piping.
func Init(cfg Log) error {
	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	var w io.Writer = io.Discard

	if cfg.Console.Enabled {
		w = NewConsoleWriter(cfg)
	}

	log.Logger = zerolog.New(w).With().Timestamp().Str("app", cfg.AppName).Logger()

	return nil
}

// NewConsoleWriter creates the stderr writer, human readable when
// UseConsoleWriter is set and JSON otherwise.
func NewConsoleWriter(cfg Log) io.Writer {
	if cfg.Console.UseConsoleWriter {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    false,
			TimeFormat: zerolog.TimeFieldFormat,
		}
	}

	return os.Stderr
}
