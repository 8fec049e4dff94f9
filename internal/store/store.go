package store

import "context"

// Well-known snapshot keys. The versioned suffixes match the record schema
// each key holds; bumping a schema means a new key.
const (
	KeyCategories = "timelog.categories.v1"
	KeyEntries    = "timelog.entries.v2"
)

// KV is the keyed persistence contract the tracker runs against. Values are
// opaque byte snapshots; ordering and schema live one layer up in Snapshots.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
