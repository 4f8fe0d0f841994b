package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// FileResolver turns a platform-local file reference into bytes ready for upload.
type FileResolver interface {
	Resolve(ctx context.Context, ref entity.FileRef) (*entity.FilePayload, error)
}
