package logging

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig holds rolling log file settings.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewWithFile creates a logger that writes to stdout and a rolling log file.
// The file output is always JSON regardless of the configured format; the
// stdout handler follows cfg.Format as usual. Rotation is handled by
// lumberjack according to fileCfg.
func NewWithFile(cfg Config, fileCfg FileConfig) *slog.Logger {
	rotator := &lumberjack.Logger{
		Filename:   fileCfg.Path,
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
	}

	fileHandler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: NewReplaceAttr(),
	})

	handler := NewMultiHandler(newHandler(cfg, os.Stdout), fileHandler)

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}
