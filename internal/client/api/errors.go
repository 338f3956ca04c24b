package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iudanet/secureshare/pkg/api"
)

// Error ответ сервера с кодом вне диапазона 2xx
type Error struct {
	Method     string
	Path       string
	Detail     string // сообщение сервера (detail/message/error), может быть пустым
	Raw        string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Detail)
	}
	if e.Raw != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Raw)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// newError разбирает тело ответа с ошибкой
func newError(method, path string, status int, body []byte) *Error {
	apiErr := &Error{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Raw:        strings.TrimSpace(string(body)),
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Detail = parseDetail(errResp)
	}

	return apiErr
}

// parseDetail извлекает текст ошибки: detail строкой, detail списком ошибок валидации, message, error
func parseDetail(resp api.ErrorResponse) string {
	if len(resp.Detail) > 0 {
		var s string
		if err := json.Unmarshal(resp.Detail, &s); err == nil && s != "" {
			return s
		}

		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(resp.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
	}

	if resp.Message != "" {
		return resp.Message
	}
	return resp.Error
}

// StatusCode возвращает HTTP статус из ошибки, 0 если это не ошибка сервера
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized сообщает, что сервер ответил 401
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// Detail возвращает сообщение сервера, а если его нет, текст самой ошибки
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}
