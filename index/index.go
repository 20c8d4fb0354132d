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
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/voyant-labs/voyant/ai"
	"github.com/voyant-labs/voyant/core"
)

// Index is an in-memory vector index over policy chunks. Chunk vectors are
// normalized to unit length on insertion, so cosine similarity reduces to a
// dot product at query time.
//
// The index is immutable after construction and safe for concurrent reads.
type Index struct {
	chunks   []core.PolicyChunk
	embedder ai.Embedder
	logger   *slog.Logger
}

// NewIndex creates an index over already-embedded chunks, normalizing each
// vector. Chunks without vectors are rejected.
func NewIndex(embedder ai.Embedder, chunks []core.PolicyChunk) (*Index, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: index: embedder is required", core.ErrConfiguration)
	}

	owned := make([]core.PolicyChunk, len(chunks))
	for i, chunk := range chunks {
		if len(chunk.Vector) == 0 {
			return nil, fmt.Errorf("%w: index: chunk seq %d has no vector", core.ErrInvalidArgument, chunk.Seq)
		}
		chunk.Vector = normalize(chunk.Vector)
		owned[i] = chunk
	}

	return &Index{
		chunks:   owned,
		embedder: embedder,
		logger:   slog.Default().With("component", "index"),
	}, nil
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int {
	return len(idx.chunks)
}

// Chunks returns the indexed chunks with their normalized vectors.
// The returned slice is shared and must not be modified.
func (idx *Index) Chunks() []core.PolicyChunk {
	return idx.chunks
}

// Retrieve embeds the query and returns the k most similar chunks, ordered by
// descending similarity. Ties break toward the chunk appearing earlier in the
// source document. An empty index yields an empty result, never an error.
func (idx *Index) Retrieve(ctx context.Context, query string, k int) ([]core.ChunkMatch, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: retrieve: k must be positive, got %d", core.ErrInvalidArgument, k)
	}

	if len(idx.chunks) == 0 {
		return []core.ChunkMatch{}, nil
	}

	vector, err := idx.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	vector = normalize(vector)

	matches := make([]core.ChunkMatch, 0, len(idx.chunks))
	for i := range idx.chunks {
		matches = append(matches, core.ChunkMatch{
			Chunk: &idx.chunks[i],
			Score: dot(vector, idx.chunks[i].Vector),
		})
	}

	slices.SortFunc(matches, func(a, b core.ChunkMatch) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return a.Chunk.Seq - b.Chunk.Seq
	})

	if k < len(matches) {
		matches = matches[:k]
	}

	idx.logger.Debug("retrieved chunks", "query_length", len(query), "k", k, "matches", len(matches))
	return matches, nil
}

// dot computes the inner product of two vectors. Mismatched dimensions
// contribute only the overlapping prefix.
func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// normalize scales a vector to unit length. Zero vectors pass through
// unchanged.
func normalize(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vector
	}

	norm := float32(math.Sqrt(sumSquares))
	normalized := make([]float32, len(vector))
	for i, v := range vector {
		normalized[i] = v / norm
	}
	return normalized
}
