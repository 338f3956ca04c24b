// Package logging настраивает slog для клиента.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel уровень по умолчанию: вывод CLI не засоряется служебными сообщениями
const DefaultLevel = "warn"

// ParseLevel разбирает уровень логирования (debug, info, warn, error)
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "d":
		return slog.LevelDebug, nil
	case "info", "i":
		return slog.LevelInfo, nil
	case "", "warn", "warning", "w":
		return slog.LevelWarn, nil
	case "error", "e":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// New создает текстовый логгер с заданным уровнем
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("app", "secureshare"), nil
}
