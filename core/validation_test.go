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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() FlightRecord {
	return FlightRecord{
		ID:            "FL001",
		Airline:       "Emirates",
		Origin:        "Dubai",
		Destination:   "Tokyo",
		DepartureDate: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC),
		PriceUSD:      950,
	}
}

func TestValidateFlightRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := validRecord()
		assert.NoError(t, ValidateFlightRecord(&record))
	})

	t.Run("one-way record is valid", func(t *testing.T) {
		record := validRecord()
		record.ReturnDate = time.Time{}
		assert.NoError(t, ValidateFlightRecord(&record))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateFlightRecord(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrData)
	})

	tests := []struct {
		name      string
		mutate    func(*FlightRecord)
		wantField string
	}{
		{"empty id", func(r *FlightRecord) { r.ID = "" }, "flight_id"},
		{"empty airline", func(r *FlightRecord) { r.Airline = "" }, "airline"},
		{"empty origin", func(r *FlightRecord) { r.Origin = "" }, "from"},
		{"empty destination", func(r *FlightRecord) { r.Destination = "" }, "to"},
		{"zero departure", func(r *FlightRecord) { r.DepartureDate = time.Time{} }, "departure_date"},
		{"return equals departure", func(r *FlightRecord) { r.ReturnDate = r.DepartureDate }, "return_date"},
		{"return before departure", func(r *FlightRecord) {
			r.ReturnDate = r.DepartureDate.AddDate(0, 0, -1)
		}, "return_date"},
		{"zero price", func(r *FlightRecord) { r.PriceUSD = 0 }, "price_usd"},
		{"negative price", func(r *FlightRecord) { r.PriceUSD = -50 }, "price_usd"},
		{"empty layover location", func(r *FlightRecord) { r.Layovers = []string{"Bangkok", ""} }, "layovers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)

			err := ValidateFlightRecord(&record)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrData)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateSearchCriteria(t *testing.T) {
	t.Run("unconstrained criteria are valid", func(t *testing.T) {
		assert.NoError(t, ValidateSearchCriteria(&SearchCriteria{}))
	})

	t.Run("nil criteria", func(t *testing.T) {
		err := ValidateSearchCriteria(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	price := -1.0
	layovers := -2
	tests := []struct {
		name     string
		criteria SearchCriteria
	}{
		{"month out of range", SearchCriteria{Month: 13, Year: 2025}},
		{"month without year", SearchCriteria{Month: time.August}},
		{"year without month", SearchCriteria{Year: 2025}},
		{"non-positive price", SearchCriteria{MaxPriceUSD: &price}},
		{"negative layovers", SearchCriteria{MaxLayovers: &layovers}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSearchCriteria(&tt.criteria)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}

	t.Run("month with year is valid", func(t *testing.T) {
		assert.NoError(t, ValidateSearchCriteria(&SearchCriteria{Month: time.August, Year: 2025}))
	})
}
