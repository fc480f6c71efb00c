package service

import (
	"context"
	"io"
)

// FileStorage persists uploaded files and returns the path clients use to reference them.
type FileStorage interface {
	// Save writes the content under the given key and returns its public path.
	Save(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// Open returns a reader for a stored key together with its content type.
	// A missing key returns ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
