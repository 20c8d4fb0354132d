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
	"fmt"
	"strings"
)

// ValidateFlightRecord validates a FlightRecord according to domain rules.
//
// Validation rules:
//   - ID, Airline, Origin, Destination must not be empty
//   - DepartureDate must be set
//   - ReturnDate, if set, must be strictly after DepartureDate
//   - PriceUSD must be positive
//   - Layover locations must not be empty strings
//
// The returned error wraps ErrData and names the record and field.
func ValidateFlightRecord(record *FlightRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrData)
	}
	if record.ID == "" {
		return dataError(record.ID, "flight_id", "must not be empty")
	}
	if record.Airline == "" {
		return dataError(record.ID, "airline", "must not be empty")
	}
	if record.Origin == "" {
		return dataError(record.ID, "from", "must not be empty")
	}
	if record.Destination == "" {
		return dataError(record.ID, "to", "must not be empty")
	}
	if record.DepartureDate.IsZero() {
		return dataError(record.ID, "departure_date", "must be set")
	}
	if !record.ReturnDate.IsZero() && !record.ReturnDate.After(record.DepartureDate) {
		return dataError(record.ID, "return_date", "must be after departure_date")
	}
	if record.PriceUSD <= 0 {
		return dataError(record.ID, "price_usd", "must be positive")
	}
	for _, layover := range record.Layovers {
		if layover == "" {
			return dataError(record.ID, "layovers", "must not contain empty locations")
		}
	}
	return nil
}

// ValidateSearchCriteria validates externally constructed criteria.
// Extraction always produces valid criteria; this guards callers that build
// SearchCriteria values by hand. Errors wrap ErrInvalidArgument.
func ValidateSearchCriteria(criteria *SearchCriteria) error {
	if criteria == nil {
		return fmt.Errorf("%w: criteria is nil", ErrInvalidArgument)
	}
	if criteria.Month != 0 && (criteria.Month < 1 || criteria.Month > 12) {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidArgument, criteria.Month)
	}
	if criteria.Month != 0 && criteria.Year <= 0 {
		return fmt.Errorf("%w: month set without a year", ErrInvalidArgument)
	}
	if criteria.Month == 0 && criteria.Year != 0 {
		return fmt.Errorf("%w: year set without a month", ErrInvalidArgument)
	}
	if criteria.MaxPriceUSD != nil && *criteria.MaxPriceUSD <= 0 {
		return fmt.Errorf("%w: max price must be positive", ErrInvalidArgument)
	}
	if criteria.MaxLayovers != nil && *criteria.MaxLayovers < 0 {
		return fmt.Errorf("%w: max layovers must not be negative", ErrInvalidArgument)
	}
	return nil
}

// dataError builds an ErrData wrap naming the offending record and field.
func dataError(recordID, field, msg string) error {
	if recordID == "" {
		recordID = "(unknown)"
	}
	return fmt.Errorf("%w: record %q field %q %s", ErrData, recordID, field, msg)
}

// normalizeName lowercases a name and collapses surrounding whitespace for
// case-insensitive matching.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
