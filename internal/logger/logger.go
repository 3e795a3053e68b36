package logger

import (
	"io"
	"os"
	"time"

	"minishop/internal/config"

	"github.com/rs/zerolog"
)

// 設定からzerologを作る
func New(cfg config.Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
