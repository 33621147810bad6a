// Package logging builds the zerolog loggers shared by the CLI and the
// desktop app.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format is the log output format.
type Format uint8

const (
	FormatUndefined Format = iota // Used as the zero value
	FormatJSON                    // Structured JSON lines
	FormatPretty                  // Human-readable console output
)

const (
	jsonFormatString      = "json"
	prettyFormatString    = "pretty"
	undefinedFormatString = "undefined"
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return jsonFormatString
	case FormatPretty:
		return prettyFormatString
	default:
		return undefinedFormatString
	}
}

// ParseFormat converts a string to a Format. Unknown values map to
// FormatUndefined.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case jsonFormatString:
		return FormatJSON
	case prettyFormatString:
		return FormatPretty
	default:
		return FormatUndefined
	}
}

// New returns a logger writing to stderr. Stdout is left to the plan output.
func New(level, format string) zerolog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter returns a logger writing to out. An unparsable level falls
// back to info and an unknown format falls back to pretty.
func NewWithWriter(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var writer io.Writer
	switch ParseFormat(format) {
	case FormatJSON:
		writer = out
	case FormatPretty, FormatUndefined:
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    out != os.Stderr && out != os.Stdout,
		}
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
