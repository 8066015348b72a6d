// Package snapshot persists the full task collection as an opaque blob.
// The engine saves after every mutation and loads once at startup; a
// missing or corrupt snapshot is recovered by starting empty, never
// surfaced as a user-facing error.
package snapshot

import (
	"context"

	"github.com/daylist-app/daylist/internal/models"
)

// Backend names a snapshot storage backend.
type Backend string

const (
	// BackendFile stores the snapshot as a JSON file on disk.
	BackendFile Backend = "file"
	// BackendRedis stores the snapshot as a blob under a Redis key.
	BackendRedis Backend = "redis"
	// BackendPostgres stores the snapshot in a single-row Postgres table.
	BackendPostgres Backend = "postgres"
)

// Store loads and saves the whole task collection.
type Store interface {
	// Load returns the persisted collection, or an empty one if nothing
	// usable is stored. Only infrastructure failures (I/O, network)
	// return an error.
	Load(ctx context.Context) ([]models.Task, error)
	// Save replaces the persisted collection.
	Save(ctx context.Context, tasks []models.Task) error
}
