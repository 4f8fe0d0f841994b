// Package files resolves user-picked file references into upload payloads.
package files

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	schemeFile = "file"
	schemeMem  = "mem"

	defaultContentType = "image/jpeg"

	// maxRemoteSize caps downloads of http(s) references.
	maxRemoteSize = 20 << 20
)

// Resolver reads local files through gocloud blob buckets.
// Bare paths and file:// URLs are served by a fileblob bucket rooted at the file's directory,
// mem:// references by a shared in-process bucket filled with Stage.
type Resolver struct {
	logger     *slog.Logger
	httpClient *http.Client

	mu      sync.Mutex
	buckets map[string]*blob.Bucket
	staging *blob.Bucket
}

// NewResolver creates a Resolver. httpClient may be nil.
func NewResolver(logger *slog.Logger, httpClient *http.Client) *Resolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Resolver{
		logger:     logger,
		httpClient: httpClient,
		buckets:    map[string]*blob.Bucket{},
		staging:    memblob.OpenBucket(nil),
	}
}

var _ service.FileResolver = (*Resolver)(nil)

// Stage stores data in the in-process bucket and returns a mem:// reference to it.
func (r *Resolver) Stage(ctx context.Context, name string, data []byte) (entity.FileRef, error) {
	key := strings.TrimPrefix(path.Clean("/"+name), "/")
	if key == "" {
		return "", domainerrors.ErrFileUnreadable.WithDetails("empty file name")
	}

	if err := r.staging.WriteAll(ctx, key, data, nil); err != nil {
		return "", errors.Wrap(err, "failed to stage file")
	}

	return entity.FileRef(schemeMem + "://" + key), nil
}

// Resolve implements service.FileResolver.
func (r *Resolver) Resolve(ctx context.Context, ref entity.FileRef) (*entity.FilePayload, error) {
	raw := strings.TrimSpace(string(ref))
	if raw == "" {
		return nil, domainerrors.ErrFileUnreadable.WithDetails("empty file reference")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Bare path, including Windows drive letters.
		return r.readLocal(ctx, raw)
	}

	switch u.Scheme {
	case schemeFile:
		return r.readLocal(ctx, filepath.FromSlash(u.Path))
	case schemeMem:
		key := strings.TrimPrefix(u.Host+u.Path, "/")

		return r.readBucket(ctx, r.staging, key, path.Base(key))
	case "http", "https":
		return r.readRemote(ctx, u)
	default:
		return nil, domainerrors.ErrFileUnreadable.WithDetails("unsupported scheme " + u.Scheme)
	}
}

// Close releases every opened bucket.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for dir, bucket := range r.buckets {
		if err := bucket.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "close bucket %s", dir)
		}
		delete(r.buckets, dir)
	}
	if err := r.staging.Close(); err != nil && firstErr == nil {
		firstErr = errors.Wrap(err, "close staging bucket")
	}

	return firstErr
}

func (r *Resolver) readLocal(ctx context.Context, p string) (*entity.FilePayload, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, domainerrors.ErrFileUnreadable.WithDetails(err.Error())
	}

	bucket, err := r.bucketFor(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}

	name := filepath.Base(abs)

	return r.readBucket(ctx, bucket, name, name)
}

func (r *Resolver) bucketFor(dir string) (*blob.Bucket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bucket, ok := r.buckets[dir]; ok {
		return bucket, nil
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, domainerrors.ErrFileUnreadable.WithDetails(err.Error())
	}
	r.buckets[dir] = bucket

	return bucket, nil
}

func (r *Resolver) readBucket(ctx context.Context, bucket *blob.Bucket, key, name string) (*entity.FilePayload, error) {
	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrFileUnreadable.WithDetails(name + " not found")
		}

		return nil, errors.Wrapf(domainerrors.ErrFileUnreadable.WithDetails(name), "read: %v", err)
	}

	return &entity.FilePayload{
		Name:        name,
		ContentType: ContentTypeFor(name),
		Data:        data,
	}, nil
}

func (r *Resolver) readRemote(ctx context.Context, u *url.URL) (*entity.FilePayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, domainerrors.ErrFileUnreadable.WithDetails(err.Error())
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Warn("Failed to download file", slog.String("url", u.String()), slog.Any("error", err))

		return nil, domainerrors.ErrFileUnreadable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domainerrors.ErrFileUnreadable.WithDetails(resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
	if err != nil {
		return nil, domainerrors.ErrFileUnreadable.WithDetails(err.Error())
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = "upload"
	}

	return &entity.FilePayload{
		Name:        name,
		ContentType: ContentTypeFor(name),
		Data:        data,
	}, nil
}

// ContentTypeFor infers image/<ext> from the file name; jpg maps to image/jpeg
// and names without an extension default to image/jpeg.
func ContentTypeFor(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	switch ext {
	case "":
		return defaultContentType
	case "jpg":
		return "image/jpeg"
	default:
		return "image/" + ext
	}
}
