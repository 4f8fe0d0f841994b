package sandbox

import (
	"context"
	"path"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// UploadsPath is the public path prefix uploaded files are served under.
const UploadsPath = "/uploads/"

// Uploads keeps uploaded images in a blob bucket and hands out public URLs for them.
type Uploads struct {
	bucket    *blob.Bucket
	publicURL string
}

// OpenUploads opens a fileblob bucket at dir, or an in-memory bucket when dir is empty.
func OpenUploads(dir, publicURL string) (*Uploads, error) {
	var bucket *blob.Bucket
	if dir == "" {
		bucket = memblob.OpenBucket(nil)
	} else {
		var err error
		bucket, err = fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "open uploads dir %s", dir)
		}
	}

	return &Uploads{bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Save stores data under a fresh key that keeps the original extension and returns its public URL.
func (u *Uploads) Save(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	if err := u.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrap(err, "store upload")
	}

	return u.publicURL + UploadsPath + key, nil
}

// Open returns the content and content type of an uploaded file.
func (u *Uploads) Open(ctx context.Context, key string) ([]byte, string, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")

	attrs, err := u.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound.WithDetails("upload " + key)
		}

		return nil, "", errors.Wrap(err, "stat upload")
	}

	data, err := u.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", errors.Wrap(err, "read upload")
	}

	return data, attrs.ContentType, nil
}

func (u *Uploads) Close() error {
	return errors.WithStack(u.bucket.Close())
}
