package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel maps a config string to a slog level, falling back to INFO.
func ParseLogLevel(input string) slog.Level {
	sanitized := strings.ToLower(strings.TrimSpace(input))

	switch sanitized {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "😬 Unable to parse a log level from input: \"%s\". Defaulting to log at INFO level.\n", input)
		return slog.LevelInfo
	}
}

// IsValidLogLevel reports whether ParseLogLevel understands the input without falling back.
func IsValidLogLevel(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug", "info", "", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
