package service

import "context"

// SecureStorage is the durable key/value store holding the persisted session.
// Implementations return found=false without error when a key is absent.
type SecureStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
