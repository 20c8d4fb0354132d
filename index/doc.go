// Package index builds and queries the in-memory vector index used for
// policy retrieval. Building embeds chunk batches concurrently; querying is a
// brute-force scored scan, which is the right trade at catalog scale.
package index
