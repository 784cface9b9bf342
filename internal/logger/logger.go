// Package logger sets up the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the global logger; Init replaces it.
var Logger = log.Logger

// Config controls level and output format
type Config struct {
	Level        string `json:"level" yaml:"level"`             // debug, info, warn, error
	Format       string `json:"format" yaml:"format"`           // json or pretty
	TimeFormat   string `json:"time_format" yaml:"time_format"` // defaults to RFC3339
	ReportCaller bool   `json:"report_caller" yaml:"report_caller"`
}

// Init configures the global logger writing to stderr.
func Init(config Config) {
	Logger = New(config, os.Stderr)
	log.Logger = Logger
}

// New builds a logger writing to out. Unknown levels fall back to info.
func New(config Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	output := out
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: config.TimeFormat,
		}
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if config.ReportCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Debug starts a debug event on the global logger
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an info event on the global logger
func Info() *zerolog.Event { return Logger.Info() }

// Warn starts a warn event on the global logger
func Warn() *zerolog.Event { return Logger.Warn() }

// Error starts an error event on the global logger
func Error() *zerolog.Event { return Logger.Error() }

// Ctx returns the logger stored in ctx, or a disabled logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores the global logger in ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
