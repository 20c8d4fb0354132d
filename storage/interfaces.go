package storage

import (
	"context"

	"github.com/voyant-labs/voyant/core"
)

// ChunkRepository persists the chunked, embedded policy document so the index
// can be rebuilt without re-embedding. The stored chunk set is replaced
// wholesale on re-index; there are no per-chunk updates.
// Implementations must be thread-safe and support concurrent access.
type ChunkRepository interface {
	// ReplaceChunks atomically replaces all stored chunks with the given set.
	// An empty set clears the store.
	ReplaceChunks(ctx context.Context, chunks []core.PolicyChunk) error

	// LoadChunks returns all stored chunks ordered by Seq ascending.
	// An empty store yields an empty slice, not an error.
	LoadChunks(ctx context.Context) ([]core.PolicyChunk, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
