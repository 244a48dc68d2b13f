// Package storage abstracts where uploaded media bytes live. The media
// service only speaks to the Backend interface; the concrete backend is
// chosen by configuration at startup.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("object not found")

// Backend persists media objects under flat string keys (stored filenames).
type Backend interface {
	// Save writes the object durably. A failed Save must leave no partial
	// object behind under key.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Open returns a reader for the stored object, or ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Remove deletes the stored object. Removing a missing object returns
	// ErrNotFound.
	Remove(ctx context.Context, key string) error
}
