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


package chunk

import (
	"fmt"
	"strings"

	"github.com/voyant-labs/voyant/core"
)

const (
	// DefaultWidth is the default chunk width in bytes.
	DefaultWidth = 500
	// DefaultOverlap is the default overlap between consecutive chunks in bytes.
	DefaultOverlap = 50

	// boundaryWindow is how far back from the width limit the chunker looks
	// for a natural boundary before falling back to a hard cut. Boundary
	// seeking only ever shrinks a chunk, so no chunk exceeds the width.
	boundaryWindow = 120
)

// boundaries are the natural break markers, in preference order: paragraph
// break, line break, sentence end.
var boundaries = []string{"\n\n", "\n", ". ", "! ", "? "}

// Chunker splits a document into consecutive overlapping spans of at most
// Width bytes. Identical input and parameters always yield an identical chunk
// sequence.
type Chunker struct {
	width   int
	overlap int
}

// NewChunker creates a chunker. Width must be positive and overlap must be
// non-negative and strictly smaller than width; anything else fails with an
// error wrapping core.ErrConfiguration.
func NewChunker(width, overlap int) (*Chunker, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: chunk width must be positive, got %d", core.ErrConfiguration, width)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap must not be negative, got %d", core.ErrConfiguration, overlap)
	}
	if overlap >= width {
		return nil, fmt.Errorf("%w: chunk overlap %d must be smaller than width %d", core.ErrConfiguration, overlap, width)
	}
	return &Chunker{width: width, overlap: overlap}, nil
}

// Split chunks the text. Each chunk after the first begins overlap bytes
// before the previous chunk's end, so adjacent chunks share that much
// content. The final chunk may be shorter than the width. Empty input yields
// no chunks.
func (c *Chunker) Split(text string) []core.PolicyChunk {
	if len(text) == 0 {
		return nil
	}

	var chunks []core.PolicyChunk
	start := 0
	for seq := 0; ; seq++ {
		end := start + c.width
		if end >= len(text) {
			chunks = append(chunks, newChunk(text, seq, start, len(text)))
			break
		}

		cut := seekBoundary(text, start, end)
		if cut-c.overlap <= start {
			// A boundary inside the overlap region would stall the split or
			// skip the bytes behind it; hard-cut at the width limit instead.
			cut = end
		}
		chunks = append(chunks, newChunk(text, seq, start, cut))
		start = cut - c.overlap
	}
	return chunks
}

// Width returns the configured chunk width.
func (c *Chunker) Width() int { return c.width }

// Overlap returns the configured chunk overlap.
func (c *Chunker) Overlap() int { return c.overlap }

func newChunk(text string, seq, start, end int) core.PolicyChunk {
	span := text[start:end]
	return core.PolicyChunk{
		Id:    core.IDFromContent(span),
		Seq:   seq,
		Start: start,
		End:   end,
		Text:  span,
	}
}

// seekBoundary looks backwards from the width limit for the best natural
// break within the boundary window. It returns the cut position, which is
// never past the limit: a missing boundary means a hard cut at the limit.
func seekBoundary(text string, start, limit int) int {
	windowStart := limit - boundaryWindow
	if windowStart <= start {
		windowStart = start + 1
	}
	window := text[windowStart:limit]

	for _, boundary := range boundaries {
		if idx := strings.LastIndex(window, boundary); idx >= 0 {
			return windowStart + idx + len(boundary)
		}
	}
	return limit
}
