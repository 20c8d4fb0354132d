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


package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyant-labs/voyant/ai/mock"
	"github.com/voyant-labs/voyant/core"
)

// axisEmbedder returns an embedder that maps known texts onto fixed vectors,
// so similarity ordering in tests is exact rather than probabilistic.
func axisEmbedder(vectors map[string][]float32) *mock.Embedder {
	embedder := mock.NewEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return []float32{0, 0, 1}, nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i], _ = embedder.EmbedTextFunc(ctx, text)
		}
		return out, nil
	}
	return embedder
}

func embeddedChunks(vectors ...[]float32) []core.PolicyChunk {
	chunks := make([]core.PolicyChunk, len(vectors))
	for i, v := range vectors {
		chunks[i] = core.PolicyChunk{
			Seq:    i,
			Text:   "chunk",
			Vector: v,
		}
	}
	return chunks
}

func TestNewIndex(t *testing.T) {
	t.Run("requires embedder", func(t *testing.T) {
		_, err := NewIndex(nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrConfiguration)
	})

	t.Run("rejects chunks without vectors", func(t *testing.T) {
		chunks := []core.PolicyChunk{{Seq: 0, Text: "no vector"}}
		_, err := NewIndex(mock.NewEmbedder(), chunks)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
	})

	t.Run("normalizes vectors on insertion", func(t *testing.T) {
		idx, err := NewIndex(mock.NewEmbedder(), embeddedChunks([]float32{3, 4, 0}))
		require.NoError(t, err)

		vector := idx.Chunks()[0].Vector
		assert.InDelta(t, 0.6, vector[0], 1e-6)
		assert.InDelta(t, 0.8, vector[1], 1e-6)
	})

	t.Run("empty index is valid", func(t *testing.T) {
		idx, err := NewIndex(mock.NewEmbedder(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, idx.Len())
	})
}

func TestIndexRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive k", func(t *testing.T) {
		idx, err := NewIndex(mock.NewEmbedder(), nil)
		require.NoError(t, err)

		_, err = idx.Retrieve(ctx, "query", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)

		_, err = idx.Retrieve(ctx, "query", -3)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
	})

	t.Run("empty index returns empty result", func(t *testing.T) {
		idx, err := NewIndex(mock.NewEmbedder(), nil)
		require.NoError(t, err)

		matches, err := idx.Retrieve(ctx, "anything", 5)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("orders by descending similarity", func(t *testing.T) {
		embedder := axisEmbedder(map[string][]float32{
			"query": {1, 0, 0},
		})

		idx, err := NewIndex(embedder, embeddedChunks(
			[]float32{0, 1, 0}, // orthogonal
			[]float32{1, 0, 0}, // identical direction
			[]float32{1, 1, 0}, // 45 degrees
		))
		require.NoError(t, err)

		matches, err := idx.Retrieve(ctx, "query", 3)
		require.NoError(t, err)
		require.Len(t, matches, 3)

		assert.Equal(t, 1, matches[0].Chunk.Seq)
		assert.Equal(t, 2, matches[1].Chunk.Seq)
		assert.Equal(t, 0, matches[2].Chunk.Seq)
		assert.InDelta(t, 1.0, matches[0].Score, 1e-6)
		assert.Greater(t, matches[1].Score, matches[2].Score)
	})

	t.Run("ties break toward earlier chunks", func(t *testing.T) {
		embedder := axisEmbedder(map[string][]float32{
			"query": {1, 0, 0},
		})

		idx, err := NewIndex(embedder, embeddedChunks(
			[]float32{1, 0, 0},
			[]float32{1, 0, 0},
		))
		require.NoError(t, err)

		matches, err := idx.Retrieve(ctx, "query", 2)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, 0, matches[0].Chunk.Seq)
		assert.Equal(t, 1, matches[1].Chunk.Seq)
	})

	t.Run("truncates to k", func(t *testing.T) {
		embedder := axisEmbedder(map[string][]float32{
			"query": {1, 0, 0},
		})

		idx, err := NewIndex(embedder, embeddedChunks(
			[]float32{1, 0, 0},
			[]float32{0, 1, 0},
			[]float32{0, 0, 1},
		))
		require.NoError(t, err)

		matches, err := idx.Retrieve(ctx, "query", 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 0, matches[0].Chunk.Seq)
	})

	t.Run("k larger than index returns all", func(t *testing.T) {
		embedder := axisEmbedder(map[string][]float32{
			"query": {1, 0, 0},
		})

		idx, err := NewIndex(embedder, embeddedChunks([]float32{1, 0, 0}))
		require.NoError(t, err)

		matches, err := idx.Retrieve(ctx, "query", 10)
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("propagates embedder failure", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
			return nil, assert.AnError
		}

		idx, err := NewIndex(embedder, embeddedChunks([]float32{1, 0, 0}))
		require.NoError(t, err)

		_, err = idx.Retrieve(ctx, "query", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
