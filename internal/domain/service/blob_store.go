package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrBlobNotFound is returned when a blob key does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore stores uploaded images and evidence documents.
type BlobStore interface {
	// Upload writes the reader to key and returns the public URL of the object.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Read returns the full object content.
	Read(ctx context.Context, key string) ([]byte, error)

	// Delete removes a single object. Missing objects yield ErrBlobNotFound.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every object under prefix and returns how many were deleted.
	DeletePrefix(ctx context.Context, prefix string) (int, error)

	// URL builds the public URL for key.
	URL(key string) string
}
