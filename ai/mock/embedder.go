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


package mock

import (
	"context"
	"hash/fnv"
	"sync"
)

// Embedder is a test double for ai.Embedder. By default it produces
// deterministic vectors derived from the text content, so equal texts embed
// identically and distinct texts (almost always) do not. Individual methods
// can be overridden via the function fields.
type Embedder struct {
	// EmbedTextFunc overrides EmbedText when non-nil.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when non-nil.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions sets the length of generated vectors. Defaults to 8.
	Dimensions int

	mu        sync.Mutex
	callCount int
}

// NewEmbedder creates a mock embedder with default deterministic behavior.
func NewEmbedder() *Embedder {
	return &Embedder{Dimensions: 8}
}

// EmbedText generates a deterministic vector for the text.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.recordCall()

	if e.EmbedTextFunc != nil {
		return e.EmbedTextFunc(ctx, text)
	}

	return e.deterministicVector(text), nil
}

// EmbedTexts generates deterministic vectors for each text.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.recordCall()

	if e.EmbedTextsFunc != nil {
		return e.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = e.deterministicVector(text)
	}
	return vectors, nil
}

// CallCount returns the number of embed calls made so far.
func (e *Embedder) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.callCount
}

func (e *Embedder) recordCall() {
	e.mu.Lock()
	e.callCount++
	e.mu.Unlock()
}

// deterministicVector hashes the text into a fixed-dimension vector. Values
// land in [0, 1) so dot products stay well-behaved in tests.
func (e *Embedder) deterministicVector(text string) []float32 {
	dims := e.Dimensions
	if dims <= 0 {
		dims = 8
	}

	vector := make([]float32, dims)
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	for i := range vector {
		seed = seed*6364136223846793005 + 1442695040888963407
		vector[i] = float32(seed>>40) / float32(1<<24)
	}
	return vector
}
