package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session token is stored
	ErrSessionNotFound = errors.New("session not found")

	// ErrShareLinkNotFound indicates that no share link is stored for the file
	ErrShareLinkNotFound = errors.New("share link not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
