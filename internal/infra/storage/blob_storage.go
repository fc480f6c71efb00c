// Package storage keeps uploaded files in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"

	"directorio/config"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/service"
	"directorio/internal/errors"
)

const (
	defaultBucketURL    = "mem://"
	defaultPublicPrefix = "/files"
)

// Params defines the parameters required for the blob storage
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.FileStorage, error) {
	bucketURL := defaultBucketURL
	publicPrefix := defaultPublicPrefix
	if params.Config.Storage != nil {
		if params.Config.Storage.BucketURL != "" {
			bucketURL = params.Config.Storage.BucketURL
		}
		if params.Config.Storage.PublicPrefix != "" {
			publicPrefix = "/" + strings.Trim(params.Config.Storage.PublicPrefix, "/")
		}
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing file storage bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewWithBucket(bucket, publicPrefix), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket, publicPrefix string) service.FileStorage {
	return &blobStorage{
		bucket:       bucket,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}
}

func (s *blobStorage) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "close writer for %s", key)
	}

	return s.publicPrefix + "/" + key, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound
		}

		return nil, "", errors.Wrapf(err, "open reader for %s", key)
	}

	return r, r.ContentType(), nil
}
