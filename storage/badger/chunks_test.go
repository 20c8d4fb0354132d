// Copyright 2025 Voyant Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyant-labs/voyant/core"
	"github.com/voyant-labs/voyant/storage"
)

func testChunks(n int) []core.PolicyChunk {
	chunks := make([]core.PolicyChunk, n)
	for i := range chunks {
		text := fmt.Sprintf("policy section %d", i)
		chunks[i] = core.PolicyChunk{
			Id:     core.IDFromContent(text),
			Seq:    i,
			Start:  i * 100,
			End:    i*100 + 50,
			Text:   text,
			Vector: []float32{float32(i), 1, 0},
		}
	}
	return chunks
}

func TestChunkRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("load from empty store", func(t *testing.T) {
		repo, backend, err := NewMemoryChunkRepository()
		require.NoError(t, err)
		defer backend.Close()
		defer repo.Close()

		chunks, err := repo.LoadChunks(ctx)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("replace then load round-trips in seq order", func(t *testing.T) {
		repo, backend, err := NewMemoryChunkRepository()
		require.NoError(t, err)
		defer backend.Close()
		defer repo.Close()

		stored := testChunks(5)
		// Store out of order; load must come back in Seq order.
		shuffled := []core.PolicyChunk{stored[3], stored[0], stored[4], stored[1], stored[2]}
		require.NoError(t, repo.ReplaceChunks(ctx, shuffled))

		loaded, err := repo.LoadChunks(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 5)

		for i, chunk := range loaded {
			assert.Equal(t, i, chunk.Seq)
			assert.Equal(t, stored[i].Text, chunk.Text)
			assert.Equal(t, stored[i].Vector, chunk.Vector)
		}
	})

	t.Run("replace removes stale chunks", func(t *testing.T) {
		repo, backend, err := NewMemoryChunkRepository()
		require.NoError(t, err)
		defer backend.Close()
		defer repo.Close()

		require.NoError(t, repo.ReplaceChunks(ctx, testChunks(8)))
		require.NoError(t, repo.ReplaceChunks(ctx, testChunks(3)))

		loaded, err := repo.LoadChunks(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded, 3)
	})

	t.Run("replace with empty set clears the store", func(t *testing.T) {
		repo, backend, err := NewMemoryChunkRepository()
		require.NoError(t, err)
		defer backend.Close()
		defer repo.Close()

		require.NoError(t, repo.ReplaceChunks(ctx, testChunks(4)))
		require.NoError(t, repo.ReplaceChunks(ctx, nil))

		loaded, err := repo.LoadChunks(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("closed backend is reported", func(t *testing.T) {
		repo, backend, err := NewMemoryChunkRepository()
		require.NoError(t, err)
		require.NoError(t, repo.Close())
		require.NoError(t, backend.Close())

		err = repo.ReplaceChunks(ctx, testChunks(1))
		assert.ErrorIs(t, err, storage.ErrStorageClosed)

		_, err = repo.LoadChunks(ctx)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
	})
}
