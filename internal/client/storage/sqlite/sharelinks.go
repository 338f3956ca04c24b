package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/secureshare/internal/client/storage"
)

// Compile-time check that Storage implements ShareLinkStorage
var _ storage.ShareLinkStorage = (*Storage)(nil)

// SaveShareLink stores or replaces the link of a file
func (s *Storage) SaveShareLink(ctx context.Context, link *storage.ShareLink) error {
	if link == nil {
		return fmt.Errorf("share link is nil")
	}

	createdAt := link.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT OR REPLACE INTO share_links (file_id, url, created_at)
		VALUES (?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, link.FileID.String(), link.URL, createdAt.Unix()); err != nil {
		return fmt.Errorf("failed to save share link: %w", err)
	}

	return nil
}

// GetShareLink returns the link of a file
func (s *Storage) GetShareLink(ctx context.Context, fileID uuid.UUID) (*storage.ShareLink, error) {
	query := `SELECT url, created_at FROM share_links WHERE file_id = ?`

	var (
		url       string
		createdAt int64
	)

	err := s.db.QueryRowContext(ctx, query, fileID.String()).Scan(&url, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrShareLinkNotFound
		}
		return nil, fmt.Errorf("failed to get share link: %w", err)
	}

	return &storage.ShareLink{
		FileID:    fileID,
		URL:       url,
		CreatedAt: time.Unix(createdAt, 0),
	}, nil
}

// ListShareLinks returns links for the given files
func (s *Storage) ListShareLinks(ctx context.Context, fileIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	links := make(map[uuid.UUID]string, len(fileIDs))
	if len(fileIDs) == 0 {
		return links, nil
	}

	placeholders := make([]string, len(fileIDs))
	args := make([]any, len(fileIDs))
	for i, id := range fileIDs {
		placeholders[i] = "?"
		args[i] = id.String()
	}

	query := `SELECT file_id, url FROM share_links WHERE file_id IN (` + strings.Join(placeholders, ",") + `)`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var rawID, url string
		if err := rows.Scan(&rawID, &url); err != nil {
			return nil, fmt.Errorf("failed to scan share link: %w", err)
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("invalid file id %q in share links: %w", rawID, err)
		}
		links[id] = url
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate share links: %w", err)
	}

	return links, nil
}

// DeleteShareLink removes the link of a file
func (s *Storage) DeleteShareLink(ctx context.Context, fileID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM share_links WHERE file_id = ?`, fileID.String()); err != nil {
		return fmt.Errorf("failed to delete share link: %w", err)
	}
	return nil
}
