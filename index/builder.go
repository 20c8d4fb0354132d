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
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/voyant-labs/voyant/ai"
	"github.com/voyant-labs/voyant/core"
)

// DefaultBatchSize is the number of chunk texts embedded per upstream call.
const DefaultBatchSize = 16

// Builder embeds chunk batches concurrently on a worker pool and assembles
// the resulting index. Batch order is preserved regardless of completion
// order.
type Builder struct {
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// BuilderOption is a functional option for configuring a Builder.
type BuilderOption func(*Builder) error

// WithPoolSize sets the number of concurrent embedding workers.
func WithPoolSize(size int) BuilderOption {
	return func(b *Builder) error {
		if size < 1 {
			return fmt.Errorf("%w: builder: pool size must be at least 1", core.ErrConfiguration)
		}

		if b.pool != nil {
			b.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of texts sent per embedding call.
func WithBatchSize(size int) BuilderOption {
	return func(b *Builder) error {
		if size < 1 {
			return fmt.Errorf("%w: builder: batch size must be at least 1", core.ErrConfiguration)
		}
		b.batchSize = size
		return nil
	}
}

// WithBuilderLogger sets the logger used during index builds.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) error {
		if logger == nil {
			return fmt.Errorf("%w: builder: logger cannot be nil", core.ErrConfiguration)
		}
		b.logger = logger.With("component", "index-builder")
		return nil
	}
}

// NewBuilder creates a builder backed by the embedder. The default pool size
// is half the CPU count, minimum one.
func NewBuilder(embedder ai.Embedder, opts ...BuilderOption) (*Builder, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: builder: embedder is required", core.ErrConfiguration)
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		embedder:  embedder,
		pool:      pool,
		batchSize: DefaultBatchSize,
		logger:    slog.Default().With("component", "index-builder"),
	}

	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}

	return b, nil
}

// Build embeds every chunk and returns the assembled index. Input chunk
// vectors are ignored and recomputed. Any batch failure aborts the build.
func (b *Builder) Build(ctx context.Context, chunks []core.PolicyChunk) (*Index, error) {
	if len(chunks) == 0 {
		return NewIndex(b.embedder, nil)
	}

	b.logger.Info("building index", "chunks", len(chunks), "batch_size", b.batchSize)

	embedded := make([]core.PolicyChunk, len(chunks))
	copy(embedded, chunks)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		buildErr error
	)

	for start := 0; start < len(chunks); start += b.batchSize {
		end := start + b.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		batchStart, batchEnd := start, end
		wg.Add(1)

		err := b.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, batchEnd-batchStart)
			for i := batchStart; i < batchEnd; i++ {
				texts[i-batchStart] = chunks[i].Text
			}

			vectors, embErr := b.embedder.EmbedTexts(ctx, texts)
			if embErr != nil {
				mu.Lock()
				if buildErr == nil {
					buildErr = embErr
				}
				mu.Unlock()
				return
			}

			if len(vectors) != len(texts) {
				mu.Lock()
				if buildErr == nil {
					buildErr = fmt.Errorf("%w: embedding batch returned %d vectors for %d texts",
						core.ErrUpstream, len(vectors), len(texts))
				}
				mu.Unlock()
				return
			}

			for i, vector := range vectors {
				embedded[batchStart+i].Vector = vector
			}
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			if buildErr == nil {
				buildErr = err
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	if buildErr != nil {
		b.logger.Error("index build failed", "err", buildErr)
		return nil, fmt.Errorf("build index: %w", buildErr)
	}

	return NewIndex(b.embedder, embedded)
}

// Release shuts down the worker pool. The builder should not be used after
// calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
