package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dpotapov/slogpfx"
)

// Logger wraps a slog.Logger and tracks prefixes, so that components of the client can label
// their output hierarchically (for instance "[txclient][broadcast]").
type Logger struct {
	*slog.Logger

	rawLogLevel string
	prefixes    []string
}

// Default logs at INFO level to stderr.
func Default() *Logger {
	return NewLogger("info")
}

// Discard returns a logger that drops everything. Useful for tests and library callers that
// do not want output.
func Discard() *Logger {
	return NewLoggerWithWriter("error", io.Discard, nil)
}

func NewLogger(rawLogLevel string) *Logger {
	return NewLoggerWithPrefixes(rawLogLevel, []string{})
}

func NewLoggerWithPrefixes(rawLogLevel string, prefixes []string) *Logger {
	return NewLoggerWithWriter(rawLogLevel, os.Stderr, prefixes)
}

// NewLoggerWithWriter creates a logger that emits text-formatted records to the given writer.
func NewLoggerWithWriter(rawLogLevel string, w io.Writer, prefixes []string) *Logger {
	slogger := newSlogger(rawLogLevel, w)
	return newLoggerWithSlogger(slogger, rawLogLevel, prefixes)
}

func newLoggerWithSlogger(slogger *slog.Logger, rawLogLevel string, prefixes []string) *Logger {
	prefix := strings.Join(prefixes, "")
	prefixedSlogger := slogger.With(prefixKey, prefix)

	return &Logger{
		Logger:      prefixedSlogger,
		rawLogLevel: rawLogLevel,
		prefixes:    prefixes,
	}
}

// ApplyPrefix returns a child logger with an additional prefix.
func (l *Logger) ApplyPrefix(prefix string) *Logger {
	prefixes := make([]string, 0, len(l.prefixes)+1)
	prefixes = append(prefixes, l.prefixes...)
	prefixes = append(prefixes, prefix)

	return newLoggerWithSlogger(l.Logger, l.rawLogLevel, prefixes)
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	slogger := l.Logger.With(args...)
	return newLoggerWithSlogger(slogger, l.rawLogLevel, l.prefixes)
}

// Any value sent to this key is treated as a prefix by the slogpfx handler.
const prefixKey = "_prefixKey"

func newSlogger(rawLogLevel string, w io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(ParseLogLevel(rawLogLevel))

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})

	// slogpfx defaults to a '>' separator; prefixes here are concatenated as-is.
	prefixFormatter := func(prefixes []slog.Value) string {
		p := make([]string, 0, len(prefixes))
		for _, prefix := range prefixes {
			if prefix.Any() == nil || prefix.String() == "" {
				continue
			}
			p = append(p, prefix.String())
		}
		if len(p) == 0 {
			return ""
		}
		return strings.Join(p, "") + " "
	}

	prefixHandler := slogpfx.NewHandler(textHandler, &slogpfx.HandlerOptions{
		PrefixKeys:      []string{prefixKey},
		PrefixFormatter: prefixFormatter,
	})

	return slog.New(prefixHandler)
}
