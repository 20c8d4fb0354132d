// Package mock provides in-memory test doubles for the ai interfaces.
// Vectors are derived deterministically from text content, and every method
// can be overridden per-test through injectable function fields.
package mock
