package settings

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists the settings singleton. Get on an empty store returns
// a zero-valued Settings, never an error; Replace fully overwrites the one
// document, creating it on first write.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Replace(ctx context.Context, s *Settings) error
	Count(ctx context.Context) (int64, error)
}

// MongoRepository keeps the singleton in the "settings" collection; the
// filter is always empty because there is only ever one document.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	if err := r.col.FindOne(ctx, bson.M{}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return &Settings{}, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoRepository) Replace(ctx context.Context, s *Settings) error {
	s.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{}, s, opts)
	return err
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// MemoryRepository is the in-memory singleton store used in tests.
type MemoryRepository struct {
	mu  sync.RWMutex
	doc *Settings
}

func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

func (r *MemoryRepository) Get(ctx context.Context) (*Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return &Settings{}, nil
	}
	cp := *r.doc
	return &cp, nil
}

func (r *MemoryRepository) Replace(ctx context.Context, s *Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	r.doc = &cp
	return nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return 0, nil
	}
	return 1, nil
}
