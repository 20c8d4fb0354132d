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


package voyant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voyant-labs/voyant/ai"
	"github.com/voyant-labs/voyant/ai/openai"
	"github.com/voyant-labs/voyant/answer"
	"github.com/voyant-labs/voyant/catalog"
	"github.com/voyant-labs/voyant/chunk"
	"github.com/voyant-labs/voyant/core"
	"github.com/voyant-labs/voyant/flights"
	"github.com/voyant-labs/voyant/index"
	"github.com/voyant-labs/voyant/storage"
	"github.com/voyant-labs/voyant/storage/badger"
)

// DefaultTopK is the number of passages retrieved per policy question.
const DefaultTopK = 3

// Assistant wires the flight and policy pipelines over a shared catalog and
// AI provider. Flight search is fully deterministic; policy answering reaches
// the embedding and generation services.
type Assistant struct {
	catalog     *catalog.Store
	extractor   *flights.Extractor
	chunker     *chunk.Chunker
	provider    ai.Provider
	synthesizer *answer.Synthesizer
	chunkRepo   storage.ChunkRepository
	backend     *badger.Backend
	index       *index.Index
	topK        int
	logger      *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig    *ai.Config
	provider    ai.Provider
	chunkRepo   storage.ChunkRepository
	storagePath string
	chunkWidth  int
	overlap     int
	topK        int
	logger      *slog.Logger
}

// WithAIConfig sets the AI service configuration used to build the default
// OpenAI-compatible provider. Ignored when WithAIProvider is also given.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a provider directly, bypassing provider construction.
func WithAIProvider(provider ai.Provider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// WithStoragePath enables chunk persistence in a BadgerDB database at path.
func WithStoragePath(path string) AssistantOption {
	return func(o *assistantOptions) {
		o.storagePath = path
	}
}

// WithChunkRepository injects a chunk repository directly. The repository is
// not closed by the assistant.
func WithChunkRepository(repo storage.ChunkRepository) AssistantOption {
	return func(o *assistantOptions) {
		o.chunkRepo = repo
	}
}

// WithChunking overrides the default chunk width and overlap.
func WithChunking(width, overlap int) AssistantOption {
	return func(o *assistantOptions) {
		o.chunkWidth = width
		o.overlap = overlap
	}
}

// WithTopK sets the number of passages retrieved per policy question.
func WithTopK(k int) AssistantOption {
	return func(o *assistantOptions) {
		o.topK = k
	}
}

// WithLogger sets the assistant's logger.
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(o *assistantOptions) {
		o.logger = logger
	}
}

// NewAssistant creates an assistant over the flight catalog.
func NewAssistant(store *catalog.Store, opts ...AssistantOption) (*Assistant, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: assistant: catalog is required", core.ErrConfiguration)
	}

	options := &assistantOptions{
		aiConfig:   ai.DefaultConfig(),
		chunkWidth: chunk.DefaultWidth,
		overlap:    chunk.DefaultOverlap,
		topK:       DefaultTopK,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.topK <= 0 {
		return nil, fmt.Errorf("%w: assistant: topK must be positive", core.ErrConfiguration)
	}

	extractor, err := flights.NewExtractor(
		flights.WithKnownLocations(store.Locations()),
		flights.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	chunker, err := chunk.NewChunker(options.chunkWidth, options.overlap)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	synthesizer, err := answer.NewSynthesizer(provider.Generator(),
		answer.WithSynthesizerLogger(options.logger))
	if err != nil {
		provider.Close()
		return nil, err
	}

	a := &Assistant{
		catalog:     store,
		extractor:   extractor,
		chunker:     chunker,
		provider:    provider,
		synthesizer: synthesizer,
		chunkRepo:   options.chunkRepo,
		topK:        options.topK,
		logger:      options.logger.With("component", "assistant"),
	}

	if options.storagePath != "" && options.chunkRepo == nil {
		backend, err := badger.OpenBackend(options.storagePath, false)
		if err != nil {
			provider.Close()
			return nil, err
		}

		repo, err := badger.NewChunkRepository(backend)
		if err != nil {
			backend.Close()
			provider.Close()
			return nil, err
		}

		a.backend = backend
		a.chunkRepo = repo
	}

	return a, nil
}

// Close releases the AI provider and any owned storage.
func (a *Assistant) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if a.backend != nil {
		if err := a.chunkRepo.Close(); err != nil {
			a.logger.Error("error closing chunk repository", "err", err)
			return err
		}
		if err := a.backend.Close(); err != nil {
			a.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

// Catalog returns the flight catalog.
func (a *Assistant) Catalog() *catalog.Store {
	return a.catalog
}

// ExtractCriteria parses a free-text flight query into search criteria.
// Extraction never fails; unrecognized text yields unconstrained criteria.
func (a *Assistant) ExtractCriteria(text string) core.SearchCriteria {
	return a.extractor.Extract(text)
}

// FlightSearch extracts criteria from the query text and returns the matching
// catalog records ordered by ascending price.
func (a *Assistant) FlightSearch(text string) []core.FlightRecord {
	criteria := a.extractor.Extract(text)
	results := flights.Search(a.catalog.Records(), criteria)
	a.logger.Debug("flight search", "query_length", len(text), "results", len(results))
	return results
}

// SearchFlights runs externally built criteria against the catalog.
// Invalid criteria wrap core.ErrInvalidArgument.
func (a *Assistant) SearchFlights(criteria *core.SearchCriteria) ([]core.FlightRecord, error) {
	if err := core.ValidateSearchCriteria(criteria); err != nil {
		return nil, err
	}
	return flights.Search(a.catalog.Records(), *criteria), nil
}

// IndexPolicy chunks and embeds the policy document, replacing any existing
// index. When a chunk repository is configured, the embedded chunks are
// persisted so LoadPolicy can rebuild the index without re-embedding.
func (a *Assistant) IndexPolicy(ctx context.Context, text string) error {
	chunks := a.chunker.Split(text)
	a.logger.Info("indexing policy document", "bytes", len(text), "chunks", len(chunks))

	builder, err := index.NewBuilder(a.provider.Embedder())
	if err != nil {
		return err
	}
	defer builder.Release()

	idx, err := builder.Build(ctx, chunks)
	if err != nil {
		return err
	}

	if a.chunkRepo != nil {
		if err := a.chunkRepo.ReplaceChunks(ctx, idx.Chunks()); err != nil {
			return fmt.Errorf("persist chunks: %w", err)
		}
	}

	a.index = idx
	return nil
}

// LoadPolicy rebuilds the index from persisted chunks. An empty store yields
// an empty index.
func (a *Assistant) LoadPolicy(ctx context.Context) error {
	if a.chunkRepo == nil {
		return fmt.Errorf("%w: assistant: no chunk repository configured", core.ErrConfiguration)
	}

	chunks, err := a.chunkRepo.LoadChunks(ctx)
	if err != nil {
		return fmt.Errorf("load chunks: %w", err)
	}

	idx, err := index.NewIndex(a.provider.Embedder(), chunks)
	if err != nil {
		return err
	}

	a.logger.Info("loaded policy index", "chunks", idx.Len())
	a.index = idx
	return nil
}

// PolicyAnswer retrieves the passages most relevant to the question and
// synthesizes a grounded answer. IndexPolicy or LoadPolicy must run first.
func (a *Assistant) PolicyAnswer(ctx context.Context, question string) (string, error) {
	if a.index == nil {
		return "", fmt.Errorf("%w: assistant: policy index not initialized", core.ErrConfiguration)
	}

	matches, err := a.index.Retrieve(ctx, question, a.topK)
	if err != nil {
		return "", err
	}

	return a.synthesizer.Synthesize(ctx, question, matches)
}
