package files

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/client/storage"
	"github.com/iudanet/secureshare/internal/models"
	"github.com/iudanet/secureshare/internal/validation"
)

// ErrNoDeleteRoute ни один вариант запроса на удаление не подошел серверу
var ErrNoDeleteRoute = errors.New("no delete route accepted by server")

// SetShareSettings задает параметры ссылок для загрузки и Share
func (e *Engine) SetShareSettings(s models.ShareSettings) error {
	if s.ExpireDays < 1 {
		return fmt.Errorf("%w: expire days must be positive, got %d", validation.ErrValidation, s.ExpireDays)
	}
	if _, err := validation.ParseMaxViews(s.MaxViews); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s
	return nil
}

// ShareSettings возвращает текущие параметры ссылок
func (e *Engine) ShareSettings() models.ShareSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// Link возвращает известную ссылку на файл (из памяти или локальной базы)
func (e *Engine) Link(ctx context.Context, fileID uuid.UUID) (string, bool) {
	e.mu.Lock()
	link, ok := e.links[fileID]
	e.mu.Unlock()
	if ok {
		return link, true
	}

	if e.opts.Links == nil {
		return "", false
	}
	stored, err := e.opts.Links.GetShareLink(ctx, fileID)
	if err != nil {
		if !errors.Is(err, storage.ErrShareLinkNotFound) {
			e.logger.Warn("failed to read share link", "file_id", fileID, "error", err)
		}
		return "", false
	}

	e.mu.Lock()
	e.links[fileID] = stored.URL
	e.mu.Unlock()
	return stored.URL, true
}

// Share создает или переиспользует ссылку на файл с текущими настройками
func (e *Engine) Share(ctx context.Context, fileID uuid.UUID) (string, error) {
	link, err := e.linker.EnsureShareLink(ctx, fileID, e.ShareSettings())
	if err != nil {
		return "", fmt.Errorf("failed to create share link: %w", err)
	}

	e.rememberLink(ctx, fileID, link)
	return link, nil
}

func (e *Engine) rememberLink(ctx context.Context, fileID uuid.UUID, link string) {
	e.mu.Lock()
	e.links[fileID] = link
	state := e.stateLocked()
	e.mu.Unlock()

	if e.opts.Links != nil {
		err := e.opts.Links.SaveShareLink(ctx, &storage.ShareLink{FileID: fileID, URL: link, CreatedAt: time.Now()})
		if err != nil {
			e.logger.Warn("failed to persist share link", "file_id", fileID, "error", err)
		}
	}

	e.notify(state)
}

// Uploaded результат загрузки одного файла
type Uploaded struct {
	LinkErr error // ошибка создания ссылки, файл при этом загружен
	Path    string
	Link    string
	File    models.FileRecord
}

// Upload загружает файлы по одному и создает ссылку на каждый.
// Ошибка ссылки не прерывает загрузку; ошибка загрузки прерывает, но уже
// загруженные файлы остаются. В конце список обновляется без задержки.
func (e *Engine) Upload(ctx context.Context, paths ...string) ([]Uploaded, error) {
	settings := e.ShareSettings()
	uploaded := make([]Uploaded, 0, len(paths))

	var uploadErr error
	for _, path := range paths {
		rec, err := e.uploadOne(ctx, path, settings.ExpireDays)
		if err != nil {
			uploadErr = fmt.Errorf("upload %s: %w", filepath.Base(path), err)
			break
		}

		item := Uploaded{Path: path, File: rec}
		link, err := e.linker.EnsureShareLink(ctx, rec.ID, settings)
		if err != nil {
			e.logger.Warn("failed to create share link for uploaded file", "file_id", rec.ID, "error", err)
			item.LinkErr = err
		} else {
			item.Link = link
			e.rememberLink(ctx, rec.ID, link)
		}
		uploaded = append(uploaded, item)
	}

	if _, err := e.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return uploaded, errors.Join(uploadErr, fmt.Errorf("refresh after upload: %w", err))
	}
	return uploaded, uploadErr
}

func (e *Engine) uploadOne(ctx context.Context, path string, expireDays int) (models.FileRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.FileRecord{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := e.api.Upload(ctx, filepath.Base(path), f, expireDays)
	if err != nil {
		return models.FileRecord{}, err
	}
	return models.FileRecordFromAPI(*info), nil
}

// Delete удаляет файл, перебирая варианты запроса по порядку.
// Следующий вариант пробуется только после 404 или 405; другая ошибка возвращается как есть.
func (e *Engine) Delete(ctx context.Context, fileID uuid.UUID) error {
	var lastErr error
	deleted := false

	for _, route := range e.opts.DeleteRoutes {
		err := e.api.DeleteFile(ctx, route, fileID)
		if err == nil {
			deleted = true
			break
		}

		status := api.StatusCode(err)
		if status != http.StatusNotFound && status != http.StatusMethodNotAllowed {
			return err
		}
		e.logger.Debug("delete route rejected, trying next", "route", route.String(), "status", status)
		lastErr = err
	}

	if !deleted {
		if lastErr == nil {
			return ErrNoDeleteRoute
		}
		return fmt.Errorf("%w: %w", ErrNoDeleteRoute, lastErr)
	}

	e.mu.Lock()
	if i := slices.IndexFunc(e.files, func(f models.FileRecord) bool { return f.ID == fileID }); i >= 0 {
		e.files = slices.Delete(e.files, i, i+1)
		e.total = max(e.total-1, 0)
		// удален последний файл на последней странице
		e.clampPageLocked()
	}
	delete(e.links, fileID)
	state := e.stateLocked()
	e.mu.Unlock()

	if e.opts.Links != nil {
		if err := e.opts.Links.DeleteShareLink(ctx, fileID); err != nil {
			e.logger.Warn("failed to drop share link", "file_id", fileID, "error", err)
		}
	}

	e.notify(state)
	return nil
}
