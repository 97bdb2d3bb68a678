package mongo

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// seqField keeps documents in the order the collection was written.
const seqField = "_seq"

// RecordStore implements ports.RecordBackend on MongoDB. Each record
// collection maps to a MongoDB collection of the same name and every write
// replaces its whole content.
type RecordStore struct {
	db *mongo.Database
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *mongo.Database) *RecordStore {
	return &RecordStore{db: db}
}

// Read returns the documents of collection as relaxed extended JSON, without
// the MongoDB bookkeeping fields.
func (s *RecordStore) Read(ctx context.Context, collection string) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, fallbackConnectTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: seqField, Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: seqField, Value: 0}})

	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var records []json.RawMessage
	for cur.Next(ctx) {
		doc, err := bson.MarshalExtJSON(cur.Current, false, false)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", collection, err)
		}
		records = append(records, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return records, nil
}

// Write replaces the content of collection with records.
func (s *RecordStore) Write(ctx context.Context, collection string, records []json.RawMessage) error {
	docs := make([]interface{}, 0, len(records))
	for i, r := range records {
		var doc bson.D
		if err := bson.UnmarshalExtJSON(r, false, &doc); err != nil {
			return fmt.Errorf("encode %s record %d: %w", collection, i, err)
		}
		docs = append(docs, append(doc, bson.E{Key: seqField, Value: i}))
	}

	ctx, cancel := context.WithTimeout(ctx, fallbackConnectTimeout)
	defer cancel()

	coll := s.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %s: %w", collection, err)
	}
	return nil
}

// Ping checks the database connection.
func (s *RecordStore) Ping(ctx context.Context) error {
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
