package utils

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs a tint handler as the default slog logger.
func InitLogger(w io.Writer, level string) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      ParseLogLevel(level),
			AddSource:  true,
			TimeFormat: time.DateTime,
		}),
	))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
