package repository

import (
	"context"
	"errors"

	"github.com/amigdala/cms-backend/internal/media"
)

var ErrNotFound = errors.New("media item not found")

// Repository persists media metadata. List returns newest-first by upload time.
type Repository interface {
	Insert(ctx context.Context, item *media.Item) error
	Get(ctx context.Context, id string) (*media.Item, error)
	List(ctx context.Context) ([]*media.Item, error)
	Delete(ctx context.Context, id string) error
}
