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


package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/voyant-labs/voyant/ai"
	"github.com/voyant-labs/voyant/core"
)

const (
	promptHeader = "Based on the following information, answer the user's question.\n" +
		"If the information doesn't contain the answer, say so honestly.\n\n"

	emptyContextNote = "No relevant information was found for this question. " +
		"Say so honestly instead of guessing.\n\n"
)

// Synthesizer turns retrieved chunks and a question into a grounded prompt and
// hands it to the generator. The model's response is returned unmodified.
type Synthesizer struct {
	generator ai.Generator
	logger    *slog.Logger
}

// SynthesizerOption is a functional option for configuring a Synthesizer.
type SynthesizerOption func(*Synthesizer) error

// WithSynthesizerLogger sets the logger used during synthesis.
func WithSynthesizerLogger(logger *slog.Logger) SynthesizerOption {
	return func(s *Synthesizer) error {
		if logger == nil {
			return fmt.Errorf("%w: synthesizer: logger cannot be nil", core.ErrConfiguration)
		}
		s.logger = logger.With("component", "synthesizer")
		return nil
	}
}

// NewSynthesizer creates a synthesizer backed by the generator.
func NewSynthesizer(generator ai.Generator, opts ...SynthesizerOption) (*Synthesizer, error) {
	if generator == nil {
		return nil, fmt.Errorf("%w: synthesizer: generator is required", core.ErrConfiguration)
	}

	s := &Synthesizer{
		generator: generator,
		logger:    slog.Default().With("component", "synthesizer"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// BuildPrompt assembles the generation prompt from the question and the
// retrieved passages in their retrieval order. Passage text is included
// verbatim. An empty retrieval produces a prompt that tells the model no
// relevant information was found.
func (s *Synthesizer) BuildPrompt(question string, matches []core.ChunkMatch) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	if len(matches) == 0 {
		b.WriteString(emptyContextNote)
	} else {
		b.WriteString("Context:\n")
		for i, match := range matches {
			fmt.Fprintf(&b, "--- Passage %d ---\n", i+1)
			b.WriteString(match.Chunk.Text)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer:")
	return b.String()
}

// Synthesize builds the prompt and returns the generator's answer verbatim.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, matches []core.ChunkMatch) (string, error) {
	prompt := s.BuildPrompt(question, matches)
	s.logger.Debug("synthesizing answer", "passages", len(matches), "prompt_length", len(prompt))

	response, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return response, nil
}
