package badger

import "encoding/binary"

// Key prefixes for different data types
const (
	policyChunkPrefix = "polchk"
)

// makePolicyChunkKey generates a key for a policy chunk by sequence number.
// The sequence is encoded in BigEndian order so lexicographic key iteration
// yields chunks in document order.
func makePolicyChunkKey(seq int) []byte {
	prefix := policyChunkPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(seq))
	return buf
}
