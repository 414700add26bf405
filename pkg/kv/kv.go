package kv

import "context"

// Store is a string-keyed blob store. All higher layers persist JSON-encoded
// collections through this interface exclusively. Operations are single-key;
// there are no transactions across keys.
type Store interface {
	// Get returns the stored value. A missing key is ("", false, nil).
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
