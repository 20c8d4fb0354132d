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

import "github.com/voyant-labs/voyant/ai"

// Provider is a test double for ai.Provider that hands out mock services.
type Provider struct {
	embedder  *Embedder
	generator *Generator
	closed    bool
}

// NewProvider creates a provider backed by fresh mock services.
func NewProvider() *Provider {
	return &Provider{
		embedder:  NewEmbedder(),
		generator: NewGenerator(),
	}
}

// NewProviderWithServices creates a provider around preconfigured mocks.
func NewProviderWithServices(embedder *Embedder, generator *Generator) *Provider {
	return &Provider{
		embedder:  embedder,
		generator: generator,
	}
}

// Embedder returns the mock embedder.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Generator returns the mock generator.
func (p *Provider) Generator() ai.Generator {
	return p.generator
}

// MockEmbedder returns the concrete mock for configuring expectations.
func (p *Provider) MockEmbedder() *Embedder {
	return p.embedder
}

// MockGenerator returns the concrete mock for configuring expectations.
func (p *Provider) MockGenerator() *Generator {
	return p.generator
}

// Close marks the provider closed.
func (p *Provider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *Provider) Closed() bool {
	return p.closed
}
