package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/voyant-labs/voyant/core"
	"github.com/voyant-labs/voyant/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a chunk repository on the backend.
//
// Returns storage.ChunkRepository interface to enforce abstraction.
func NewChunkRepository(backend *Backend) (storage.ChunkRepository, error) {
	return &ChunkRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the caller and
// stays open.
func (r *ChunkRepository) Close() error {
	return nil
}

// ReplaceChunks atomically replaces all stored chunks with the given set.
func (r *ChunkRepository) ReplaceChunks(ctx context.Context, chunks []core.PolicyChunk) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Delete existing chunks first so stale tails from a previously larger
		// document cannot survive the replace.
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(policyChunkPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var stale [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			stale = append(stale, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		for i := range chunks {
			key := makePolicyChunkKey(chunks[i].Seq)
			value := storage.MarshalPolicyChunk(&chunks[i])
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}

		return tx.Commit()
	}, true)
}

// LoadChunks returns all stored chunks ordered by Seq ascending.
func (r *ChunkRepository) LoadChunks(ctx context.Context) ([]core.PolicyChunk, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	chunks := []core.PolicyChunk{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(policyChunkPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Keys embed the sequence in BigEndian, so iteration order is Seq order.
		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				chunk, err := storage.UnmarshalPolicyChunk(val)
				if err != nil {
					return err
				}
				chunks = append(chunks, *chunk)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	return chunks, nil
}
