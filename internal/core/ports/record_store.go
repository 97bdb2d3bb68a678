package ports

import (
	"context"
	"encoding/json"
)

// RecordBackend persists whole named collections of flat JSON records.
// Implementations report failures; absorbing them is the caller's job.
type RecordBackend interface {
	// Read returns the stored records of collection. A collection that was
	// never written yields no records and no error.
	Read(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Write replaces the whole collection with records.
	Write(ctx context.Context, collection string, records []json.RawMessage) error
}

// Collection is a typed, failure-tolerant view over one record collection.
type Collection[T any] interface {
	// Load returns the current records, or an empty slice when storage is
	// missing or unreadable.
	Load(ctx context.Context) []T
	// Update runs load, fn, save as one serialized step. When fn returns an
	// error nothing is saved and the error is returned unchanged.
	// Stored records that Load cannot read are kept as they are.
	Update(ctx context.Context, fn func(records []T) ([]T, error)) error
}
