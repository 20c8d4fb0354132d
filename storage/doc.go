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


// Package storage provides the storage abstraction layer for voyant.
//
// It defines the repository interface that decouples chunk persistence from
// the retrieval pipeline, so different backends (BadgerDB, in-memory) can be
// used interchangeably. Public constructors in backend packages return the
// interface, not the concrete type, to keep consumers decoupled:
//
//	repo, err := badger.NewChunkRepository(backend)  // returns storage.ChunkRepository
//
// All repository implementations must be thread-safe, and all methods accept
// context.Context for cancellation.
package storage
