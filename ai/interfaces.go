package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. It is one of the two opaque upstream calls: deterministic for
// identical input, network-bound, never retried here.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Failures wrap core.ErrUpstream.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch, in input order. Failures wrap core.ErrUpstream.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces text from a prompt. It is the second opaque upstream
// call: prompt string in, text out, with no retry inside the core.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// GenerateText returns the model's response for the prompt, unmodified.
	// Failures wrap core.ErrUpstream.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder and Generator
// instances, ensuring they share configuration appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the text generation service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
