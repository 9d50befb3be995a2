package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo keeps one document per key in a single collection, with the raw JSON
// blob in the data field. The document model is deliberately not normalized
// per record; the stores expect whole-blob semantics from every backend.
type Mongo struct {
	collection *mongo.Collection
}

type kvDocument struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

func NewMongo(collection *mongo.Collection) *Mongo {
	return &Mongo{collection: collection}
}

func (m *Mongo) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var doc kvDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", key, err)
	}
	return doc.Data, nil
}

func (m *Mongo) Save(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := m.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Data: data},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace %s: %w", key, err)
	}
	return nil
}
