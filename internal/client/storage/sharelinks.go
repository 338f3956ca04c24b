package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShareLink represents a resolved share link for a file
type ShareLink struct {
	CreatedAt time.Time
	URL       string
	FileID    uuid.UUID
}

// ShareLinkStorage defines interface for persisting the file id -> share URL map.
// Одна ссылка на файл: повторное сохранение перезаписывает URL.
type ShareLinkStorage interface {
	// SaveShareLink stores or replaces the link for link.FileID
	SaveShareLink(ctx context.Context, link *ShareLink) error

	// GetShareLink returns the link for a file
	// Returns ErrShareLinkNotFound if there is none
	GetShareLink(ctx context.Context, fileID uuid.UUID) (*ShareLink, error)

	// ListShareLinks returns links for the given files; files without a link are skipped
	ListShareLinks(ctx context.Context, fileIDs []uuid.UUID) (map[uuid.UUID]string, error)

	// DeleteShareLink removes the link of a deleted file
	// Deleting a missing link is not an error
	DeleteShareLink(ctx context.Context, fileID uuid.UUID) error
}
