// Package storage provides the key-value persistence layer for the launcher.
// Values are JSON blobs; components above this package decide their shape.
package storage

import "context"

// Store is the persistence abstraction the engine depends on.
// Get returns nil for an absent key, never an error for one.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Namespace composes the storage key for a per-profile entity.
// Global entities (profile list, active pointer, lockdown) use their base key as-is.
func Namespace(base, profileID string) string {
	return base + "_" + profileID
}
