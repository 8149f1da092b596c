// Package logging provides the structured logger every reduction run
// writes through: a thin wrapper over zerolog configured the way the
// rest of the corpus configures it (JSON to stdout by default, level
// selectable, a ConsoleWriter for text output during local debugging).
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Format selects the log line encoding.
type Format string

const (
	// FormatJSON emits one JSON object per line (the default).
	FormatJSON Format = "json"
	// FormatText emits a human-readable, colorized line per event.
	FormatText Format = "text"
)

// Config configures a new Logger.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error");
	// anything else defaults to "info".
	Level string
	// Format selects FormatJSON or FormatText; the zero value is FormatJSON.
	Format Format
	// Output defaults to os.Stdout.
	Output io.Writer
}

// Logger wraps a configured zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zl := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case "debug":
		zl = zl.Level(zerolog.DebugLevel)
	case "warn":
		zl = zl.Level(zerolog.WarnLevel)
	case "error":
		zl = zl.Level(zerolog.ErrorLevel)
	default:
		zl = zl.Level(zerolog.InfoLevel)
	}
	return &Logger{zl: zl}
}

// Nop returns a Logger that discards everything, for callers who never
// configured one (e.g. library use with logging opted out).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With returns a child Logger with an additional field attached to
// every subsequent event.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.zl.Info().Msg(msg) }

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string) { l.zl.Warn().Msg(msg) }

// Error logs msg at error level with err attached.
func (l *Logger) Error(msg string, err error) { l.zl.Error().Err(err).Msg(msg) }
