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


package flights

import (
	"slices"
	"strings"

	"github.com/voyant-labs/voyant/core"
)

// Search applies the criteria to the catalog and returns the matching records
// ordered by ascending price, ties broken by ascending record ID. It is a pure
// function: the input slice is never mutated and an empty result is valid
// output, not an error.
//
// Every non-absent criterion is an independent predicate; a record must
// satisfy all of them to remain. This is a strict hard-filter over a small
// fixed catalog, not ranked retrieval.
func Search(records []core.FlightRecord, criteria core.SearchCriteria) []core.FlightRecord {
	results := make([]core.FlightRecord, 0, len(records))
	for i := range records {
		if matches(&records[i], &criteria) {
			results = append(results, records[i])
		}
	}

	slices.SortFunc(results, func(a, b core.FlightRecord) int {
		if a.PriceUSD != b.PriceUSD {
			if a.PriceUSD < b.PriceUSD {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
	return results
}

func matches(record *core.FlightRecord, criteria *core.SearchCriteria) bool {
	if criteria.Origin != "" && !locationMatches(record.Origin, criteria.Origin) {
		return false
	}
	if criteria.Destination != "" && !locationMatches(record.Destination, criteria.Destination) {
		return false
	}
	if criteria.Month != 0 {
		if record.DepartureDate.Month() != criteria.Month || record.DepartureDate.Year() != criteria.Year {
			return false
		}
	}
	if criteria.Alliance != nil && record.Alliance != *criteria.Alliance {
		return false
	}
	if criteria.MaxPriceUSD != nil && record.PriceUSD > *criteria.MaxPriceUSD {
		return false
	}
	if criteria.RefundableOnly && !record.Refundable {
		return false
	}
	if criteria.AvoidOvernightLayover && record.OvernightLayover {
		return false
	}
	if criteria.MaxLayovers != nil && len(record.Layovers) > *criteria.MaxLayovers {
		return false
	}
	return true
}

// locationMatches reports whether the criterion is a case-insensitive exact
// or prefix match of the record's location field.
func locationMatches(field, want string) bool {
	return strings.HasPrefix(strings.ToLower(field), strings.ToLower(want))
}
