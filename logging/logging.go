package logging

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// New creates a console slog.Logger with the provided level string.
func New(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler)
}

func levelFromString(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// SanitizeURL strips query and fragment from a URL so it can be logged
// without leaking tokens embedded in query parameters.
func SanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if len(raw) > 200 {
			return raw[:200] + "..."
		}
		return raw
	}
	clean := u.Scheme + "://" + u.Host + u.Path
	if len(clean) > 200 {
		clean = clean[:200] + "..."
	}
	return clean
}
