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
	"sync"
)

// Generator is a test double for ai.Generator. By default it echoes the
// prompt back, which lets tests assert on exactly what was sent to the model.
type Generator struct {
	// GenerateTextFunc overrides GenerateText when non-nil.
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)

	mu        sync.Mutex
	callCount int
	prompts   []string
}

// NewGenerator creates a mock generator with default echo behavior.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateText records the prompt and returns either the injected response or
// the prompt itself.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.callCount++
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if g.GenerateTextFunc != nil {
		return g.GenerateTextFunc(ctx, prompt)
	}

	return prompt, nil
}

// CallCount returns the number of generate calls made so far.
func (g *Generator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCount
}

// LastPrompt returns the most recent prompt, or "" if none were made.
func (g *Generator) LastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.prompts) == 0 {
		return ""
	}
	return g.prompts[len(g.prompts)-1]
}
