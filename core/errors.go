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

import "errors"

// Error taxonomy. Every error surfaced by the engines wraps exactly one of
// these sentinels so callers can classify failures with errors.Is.
var (
	// ErrConfiguration indicates invalid chunking or index parameters.
	// Fatal at startup.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrData indicates a malformed catalog or document record.
	// Fatal at load; the wrap message names the record and field.
	ErrData = errors.New("malformed data")

	// ErrInvalidArgument indicates a caller bug such as a non-positive
	// retrieval k or malformed criteria construction.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUpstream indicates that an opaque embedding or generation call
	// failed. It is surfaced to the caller verbatim and never retried here.
	ErrUpstream = errors.New("upstream call failed")
)
