// Package chunk splits policy documents into bounded, overlapping spans for
// retrieval. Splitting prefers natural boundaries (paragraph, line, sentence)
// near the target width and is fully deterministic.
package chunk
