// Package logging sets up the process-wide slog logger, with optional
// file rotation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/usestring/mcp-template/internal/config"
)

// Setup initializes the global slog logger from the loaded configuration.
// Logs go to stderr, or to a rotated file when LOG_FILE is set. Stdout is
// never used: on the stdio transport it carries protocol traffic.
// Returns a cleanup function to call on shutdown.
func Setup(cfg *config.Config) (func() error, error) {
	var w io.Writer = os.Stderr
	cleanup := func() error { return nil }

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   cfg.LogCompress,
			LocalTime:  true,
		}
		w = lj
		cleanup = lj.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(cfg.LogLevel),
	})
	slog.SetDefault(slog.New(handler))

	return cleanup, nil
}

// ParseLevel maps a LOG_LEVEL string to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
