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


package storage

import (
	"fmt"

	"github.com/voyant-labs/voyant/core"
)

// MarshalPolicyChunk serializes a PolicyChunk to bytes.
func MarshalPolicyChunk(chunk *core.PolicyChunk) []byte {
	buf := make([]byte, core.PolicyChunkMUS.Size(*chunk))
	core.PolicyChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalPolicyChunk deserializes a PolicyChunk from bytes.
func UnmarshalPolicyChunk(data []byte) (*core.PolicyChunk, error) {
	chunk, _, err := core.PolicyChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &chunk, nil
}
