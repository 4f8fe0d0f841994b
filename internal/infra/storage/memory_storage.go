package storage

import (
	"context"
	"sync"

	"storefront/internal/domain/service"
)

// memoryStorage is a process-local store, used for web-like ephemeral runs and tests.
type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory SecureStorage.
func NewMemoryStorage() service.SecureStorage {
	return &memoryStorage{values: map[string]string{}}
}

func (s *memoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.values[key]

	return value, found, nil
}

func (s *memoryStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}
