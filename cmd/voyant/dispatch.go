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


package main

import "strings"

// Capability identifies which engine handles a query.
type Capability int

const (
	// CapabilityFlights routes to the flight filter engine.
	CapabilityFlights Capability = iota
	// CapabilityPolicy routes to the policy answer engine.
	CapabilityPolicy
)

// policyCues route a query to the policy engine. Flight search is the
// default, so only policy phrasing needs to be listed.
var policyCues = []string{
	"visa",
	"passport",
	"policy",
	"policies",
	"refund",
	"cancellation",
	"cancel",
	"transit",
	"insurance",
	"benefit",
	"covid",
	"health",
	"requirement",
	"regulation",
}

// route picks the capability for a free-text query by keyword match.
// Any policy cue wins; everything else is a flight search.
func route(query string) Capability {
	lowered := strings.ToLower(query)
	for _, cue := range policyCues {
		if strings.Contains(lowered, cue) {
			return CapabilityPolicy
		}
	}
	return CapabilityFlights
}
