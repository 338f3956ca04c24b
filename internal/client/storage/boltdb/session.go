package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/secureshare/internal/client/storage"
)

var sessionKey = []byte("current")

// Compile-time check that Storage implements SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// SaveSession stores session data
func (s *Storage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if session == nil {
		return fmt.Errorf("session data is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session data: %w", err)
		}

		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session data: %w", err)
		}

		return nil
	})
}

// GetSession retrieves stored session data
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var session *storage.SessionData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		// Десериализуем
		session = &storage.SessionData{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes stored session data
func (s *Storage) DeleteSession(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(sessionKey) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session data: %w", err)
		}

		return nil
	})
}
