package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/secureshare/pkg/api"
)

// FileRecord представляет файл пользователя на сервере.
// Клиент держит только страницу таких записей и не изменяет их.
type FileRecord struct {
	CreatedAt time.Time
	ExpiresAt time.Time
	Filename  string
	FileType  string // content type, например "application/pdf"
	SizeBytes int64
	ID        uuid.UUID
}

// FileRecordFromAPI конвертирует DTO сервера в модель клиента
func FileRecordFromAPI(info api.FileInfo) FileRecord {
	return FileRecord{
		ID:        info.ID,
		Filename:  info.Filename,
		SizeBytes: info.Size,
		CreatedAt: info.CreatedAt,
		ExpiresAt: info.ExpiresAt,
		FileType:  info.ContentType,
	}
}

// SizeKB возвращает размер в килобайтах для отображения
func (f FileRecord) SizeKB() string {
	return fmt.Sprintf("%.1f KB", float64(f.SizeBytes)/1024)
}

// ShareSettings параметры создания ссылки на файл
type ShareSettings struct {
	MaxViews      string // пустая строка означает без ограничения
	ExpireDays    int
	ReuseExisting bool
}

// DefaultShareSettings возвращает настройки по умолчанию: 7 дней, без лимита, переиспользовать
func DefaultShareSettings() ShareSettings {
	return ShareSettings{
		ExpireDays:    7,
		ReuseExisting: true,
	}
}
