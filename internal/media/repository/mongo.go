package repository

import (
	"context"

	"github.com/amigdala/cms-backend/internal/media"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores media metadata in the "media" collection with a string
// "id" field (generated uuid, unique).
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, item *media.Item) error {
	_, err := m.col.InsertOne(ctx, item)
	return err
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*media.Item, error) {
	var it media.Item
	if err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&it); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*media.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*media.Item{}
	for cur.Next(ctx) {
		var it media.Item
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		out = append(out, &it)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
