package repository

import (
	"context"
	"errors"

	"github.com/amigdala/cms-backend/internal/content"
)

var ErrNotFound = errors.New("section not found")

// Repository provides section-document persistence. Upsert is a whole-document
// replace keyed by section; List returns documents in storage-native order.
type Repository interface {
	Upsert(ctx context.Context, doc *content.Document) error
	Get(ctx context.Context, section string) (*content.Document, error)
	List(ctx context.Context) ([]*content.Document, error)
	Count(ctx context.Context) (int64, error)
}
