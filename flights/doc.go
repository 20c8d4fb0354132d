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


// Package flights turns free-text queries into structured search criteria and
// filters the flight catalog against them.
//
// Extraction is rule-based: declarative (pattern, effect) tables evaluated in
// a fixed order, so behavior is auditable and testable in isolation. It never
// fails; unmatched text leaves fields unconstrained. Filtering is a pure
// conjunction of the present criteria with deterministic price/ID ordering.
package flights
