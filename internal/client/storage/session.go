package storage

import (
	"context"
)

// SessionStorage defines interface for persisting the bearer token on client.
// It plays the role of the browser's localStorage: the token survives restarts.
type SessionStorage interface {
	// SaveSession stores session data, replacing the previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if nothing is stored
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes stored session data (logout, 401, malformed token)
	// Returns ErrSessionNotFound if nothing is stored
	DeleteSession(ctx context.Context) error
}

// SessionData represents persisted session information
type SessionData struct {
	Token   string `json:"token"`    // opaque bearer token
	Email   string `json:"email"`    // email, под которым выполнен вход
	SavedAt int64  `json:"saved_at"` // unix timestamp сохранения
}
