package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileInfo описывает файл пользователя в ответах GET /files и POST /upload
type FileInfo struct {
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	ShareURL    string    `json:"share_url,omitempty"`
	Token       string    `json:"token,omitempty"`
	Size        int64     `json:"size"`
	ID          uuid.UUID `json:"id"`
}

// FileListResponse представляет одну страницу списка файлов
type FileListResponse struct {
	Files []FileInfo `json:"files"`
	Total int        `json:"total"`
	Skip  int        `json:"skip"`
	Limit int        `json:"limit"`
}

// ShareRequest запрос на создание или переиспользование ссылки.
// MaxViews == nil сериализуется в null (без ограничения просмотров).
type ShareRequest struct {
	MaxViews      *int `json:"max_views"`
	ExpireDays    int  `json:"expire_days"`
	ReuseExisting bool `json:"reuse_existing"`
}

// ShareResponse известные поля ответа на создание ссылки.
// Сервер может вернуть любое из них либо просто строку.
type ShareResponse struct {
	URL      string `json:"url,omitempty"`
	ShareURL string `json:"share_url,omitempty"`
	Token    string `json:"token,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой.
// Detail бывает строкой или списком ошибок валидации, поэтому хранится как RawMessage.
type ErrorResponse struct {
	Detail  json.RawMessage `json:"detail,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}
