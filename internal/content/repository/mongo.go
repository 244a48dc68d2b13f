package repository

import (
	"context"
	"time"

	"github.com/amigdala/cms-backend/internal/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores section documents flat in the "content" collection,
// keyed by the "section" field.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// at most one document per section key
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "section", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

// Upsert replaces the whole document for doc.Section, creating it when
// absent. The store's own keyed upsert provides the atomicity; there is no
// read-modify-write window.
func (m *MongoRepo) Upsert(ctx context.Context, doc *content.Document) error {
	fields, err := flatten(doc)
	if err != nil {
		return err
	}
	filter := bson.M{"section": doc.Section}
	opts := options.Replace().SetUpsert(true)
	_, err = m.col.ReplaceOne(ctx, filter, fields, opts)
	return err
}

func (m *MongoRepo) Get(ctx context.Context, section string) (*content.Document, error) {
	var raw bson.Raw
	err := m.col.FindOne(ctx, bson.M{"section": section}).Decode(&raw)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inflate(raw)
}

func (m *MongoRepo) List(ctx context.Context) ([]*content.Document, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.Document{}
	for cur.Next(ctx) {
		doc, err := inflate(cur.Current)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}

// flatten produces the flat on-disk shape: body fields plus section/updatedAt.
func flatten(doc *content.Document) (bson.M, error) {
	fields := bson.M{}
	if doc.Body != nil {
		b, err := bson.Marshal(doc.Body)
		if err != nil {
			return nil, err
		}
		if err := bson.Unmarshal(b, &fields); err != nil {
			return nil, err
		}
	}
	delete(fields, "_id")
	fields["section"] = doc.Section
	fields["updatedAt"] = doc.UpdatedAt
	return fields, nil
}

// inflate rebuilds a Document from the flat stored shape, decoding the body
// into the section's typed struct when the key is known.
func inflate(raw bson.Raw) (*content.Document, error) {
	var head struct {
		Section   string    `bson:"section"`
		UpdatedAt time.Time `bson:"updatedAt"`
	}
	if err := bson.Unmarshal(raw, &head); err != nil {
		return nil, err
	}
	doc := &content.Document{Section: head.Section, UpdatedAt: head.UpdatedAt}
	if body, ok := content.NewBody(head.Section); ok {
		if err := bson.Unmarshal(raw, body); err != nil {
			return nil, err
		}
		doc.Body = body
		return doc, nil
	}
	m := map[string]interface{}{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	delete(m, "_id")
	delete(m, "section")
	delete(m, "updatedAt")
	doc.Body = m
	return doc, nil
}
