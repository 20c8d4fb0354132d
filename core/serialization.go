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


package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted domain types. Written by hand; the format
// is a straight field-order concatenation, so any field change here is a
// breaking change to stored data.

var (
	// IDMUS serializes IDs as varints.
	IDMUS = idMUS{}

	// PolicyChunkMUS serializes PolicyChunks.
	PolicyChunkMUS = policyChunkMUS{}

	vectorMUS = ord.NewSliceSer[float32](raw.Float32)
)

type idMUS struct{}

func (s idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (s idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	raw, n, err := varint.Uint64.Unmarshal(bs)
	return ID(raw), n, err
}

func (s idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (s idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type policyChunkMUS struct{}

func (s policyChunkMUS) Marshal(chunk PolicyChunk, bs []byte) (n int) {
	n = IDMUS.Marshal(chunk.Id, bs)
	n += varint.Int.Marshal(chunk.Seq, bs[n:])
	n += varint.Int.Marshal(chunk.Start, bs[n:])
	n += varint.Int.Marshal(chunk.End, bs[n:])
	n += ord.String.Marshal(chunk.Text, bs[n:])
	n += vectorMUS.Marshal(chunk.Vector, bs[n:])
	return
}

func (s policyChunkMUS) Unmarshal(bs []byte) (chunk PolicyChunk, n int, err error) {
	var n1 int
	chunk.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	chunk.Seq, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	chunk.Start, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	chunk.End, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	chunk.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	chunk.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s policyChunkMUS) Size(chunk PolicyChunk) (size int) {
	size = IDMUS.Size(chunk.Id)
	size += varint.Int.Size(chunk.Seq)
	size += varint.Int.Size(chunk.Start)
	size += varint.Int.Size(chunk.End)
	size += ord.String.Size(chunk.Text)
	size += vectorMUS.Size(chunk.Vector)
	return
}

func (s policyChunkMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		n1, err = varint.Int.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}
