package tokenstore

import "context"

// Store is an opaque key-value store for session tokens, scoped to the
// device/process. It mirrors a mobile secure-storage surface: string keys,
// string values, no enumeration.
//
// Only the auth container writes to or reads from the store.
type Store interface {
	// SetItem writes the value for key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// GetItem returns the value for key, or ErrNotFound if the key is unset.
	GetItem(ctx context.Context, key string) (string, error)

	// DeleteItem removes the key. Deleting an absent key is not an error.
	DeleteItem(ctx context.Context, key string) error
}
