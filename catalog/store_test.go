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


package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyant-labs/voyant/core"
)

const validCatalog = `[
  {
    "flight_id": "FL001",
    "airline": "Emirates",
    "alliance": "None",
    "from": "Dubai",
    "to": "Tokyo",
    "departure_date": "2025-08-10",
    "return_date": "2025-08-24",
    "layovers": ["Bangkok"],
    "overnight_layover": true,
    "price_usd": 950,
    "refundable": false
  },
  {
    "flight_id": "FL002",
    "airline": "ANA",
    "alliance": "Star Alliance",
    "from": "Dubai",
    "to": "Tokyo",
    "departure_date": "2025-08-12",
    "return_date": "2025-08-26",
    "layovers": [],
    "overnight_layover": false,
    "price_usd": 1200,
    "refundable": true
  },
  {
    "flight_id": "FL003",
    "airline": "Air France",
    "alliance": "SkyTeam",
    "from": "Paris",
    "to": "Dubai",
    "departure_date": "2025-09-03",
    "price_usd": 650,
    "refundable": true
  }
]`

func TestLoad(t *testing.T) {
	store, err := Load(strings.NewReader(validCatalog))
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())

	records := store.Records()
	assert.Equal(t, "FL001", records[0].ID)
	assert.Equal(t, core.AllianceNone, records[0].Alliance)
	assert.Equal(t, []string{"Bangkok"}, records[0].Layovers)
	assert.True(t, records[0].OvernightLayover)
	assert.Equal(t, time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC), records[0].DepartureDate)

	assert.Equal(t, core.AllianceStar, records[1].Alliance)
	assert.True(t, records[1].Refundable)

	// Missing return_date means a one-way itinerary, not an error.
	assert.True(t, records[2].OneWay())
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed JSON", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{not json`))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrData)
	})

	t.Run("missing airline names record and field", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[
		  {"flight_id": "FL009", "alliance": "None", "from": "Dubai", "to": "Tokyo",
		   "departure_date": "2025-08-10", "price_usd": 500}
		]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrData)
		assert.Contains(t, err.Error(), `"FL009"`)
		assert.Contains(t, err.Error(), `"airline"`)
	})

	t.Run("missing departure date", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[
		  {"flight_id": "FL010", "airline": "Emirates", "alliance": "None",
		   "from": "Dubai", "to": "Tokyo", "price_usd": 500}
		]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrData)
		assert.Contains(t, err.Error(), `"departure_date"`)
	})

	t.Run("invalid date format", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[
		  {"flight_id": "FL011", "airline": "Emirates", "alliance": "None",
		   "from": "Dubai", "to": "Tokyo", "departure_date": "10/08/2025", "price_usd": 500}
		]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrData)
		assert.Contains(t, err.Error(), `"departure_date"`)
	})

	t.Run("unknown alliance", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[
		  {"flight_id": "FL012", "airline": "Emirates", "alliance": "Galactic",
		   "from": "Dubai", "to": "Tokyo", "departure_date": "2025-08-10", "price_usd": 500}
		]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrData)
		assert.Contains(t, err.Error(), `"alliance"`)
	})

	t.Run("return before departure", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[
		  {"flight_id": "FL013", "airline": "Emirates", "alliance": "None",
		   "from": "Dubai", "to": "Tokyo", "departure_date": "2025-08-10",
		   "return_date": "2025-08-01", "price_usd": 500}
		]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrData)
		assert.Contains(t, err.Error(), `"return_date"`)
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[
		  {"flight_id": "FL014", "airline": "Emirates", "alliance": "None",
		   "from": "Dubai", "to": "Tokyo", "departure_date": "2025-08-10", "price_usd": 0}
		]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrData)
		assert.Contains(t, err.Error(), `"price_usd"`)
	})
}

func TestLocations(t *testing.T) {
	store, err := Load(strings.NewReader(validCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"Dubai", "Paris", "Tokyo"}, store.Locations())
}

func TestLoadEmptyCatalog(t *testing.T) {
	store, err := Load(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Locations())
}
