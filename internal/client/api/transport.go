package api

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport логирует каждый HTTP обмен с сервером.
// Логирует метод, путь, статус, время выполнения.
// НЕ логирует заголовки и query (токены, email, коды).
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	return &loggingTransport{next: next, logger: logger}
}

// RoundTrip выполняет запрос и пишет одну запись в лог
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		// Отмена запроса ожидаема (новый поиск вытесняет старый), это не ошибка
		level := slog.LevelWarn
		if req.Context().Err() != nil {
			level = slog.LevelDebug
		}
		t.logger.Log(req.Context(), level, "HTTP request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	// Определяем уровень логирования на основе статуса
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	t.logger.Log(req.Context(), logLevel, "HTTP request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return resp, nil
}
