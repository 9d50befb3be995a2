// Package storage is the persistence port for the record stores. Each key
// ("schedules", "issues") maps to one JSON blob that is read and written
// whole on every operation, mirroring the key-value model the web client
// used. Backends carry no schema knowledge; the stores own (de)serialization.
package storage

import "context"

// Backend is a key-value blob store. Load returns (nil, nil) when the key has
// never been written; callers treat that as an empty collection.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
