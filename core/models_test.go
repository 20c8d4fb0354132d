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
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("same text"), IDFromContent("same text"))
	})

	t.Run("distinct content gives distinct ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("first"), IDFromContent("second"))
	})

	t.Run("empty content is valid", func(t *testing.T) {
		assert.Equal(t, IDFromContent(""), IDFromContent(""))
	})
}

func TestAllianceString(t *testing.T) {
	assert.Equal(t, "None", AllianceNone.String())
	assert.Equal(t, "Star Alliance", AllianceStar.String())
	assert.Equal(t, "Oneworld", AllianceOneworld.String())
	assert.Equal(t, "SkyTeam", AllianceSkyTeam.String())
}

func TestParseAlliance(t *testing.T) {
	tests := []struct {
		name   string
		want   Alliance
		wantOK bool
	}{
		{"Star Alliance", AllianceStar, true},
		{"star alliance", AllianceStar, true},
		{"Oneworld", AllianceOneworld, true},
		{"SkyTeam", AllianceSkyTeam, true},
		{"skyteam", AllianceSkyTeam, true},
		{"None", AllianceNone, true},
		{"", AllianceNone, true},
		{"  star alliance  ", AllianceStar, true},
		{"Galactic", AllianceNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseAlliance(tt.name)
		assert.Equal(t, tt.wantOK, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestFlightRecordOneWay(t *testing.T) {
	record := FlightRecord{DepartureDate: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)}
	assert.True(t, record.OneWay())

	record.ReturnDate = time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.False(t, record.OneWay())
}

func TestSearchCriteriaIsUnconstrained(t *testing.T) {
	var criteria SearchCriteria
	assert.True(t, criteria.IsUnconstrained())

	price := 900.0
	for _, mutate := range []func(*SearchCriteria){
		func(c *SearchCriteria) { c.Origin = "Dubai" },
		func(c *SearchCriteria) { c.Destination = "Tokyo" },
		func(c *SearchCriteria) { c.Month = time.August },
		func(c *SearchCriteria) { a := AllianceStar; c.Alliance = &a },
		func(c *SearchCriteria) { c.MaxPriceUSD = &price },
		func(c *SearchCriteria) { c.RefundableOnly = true },
		func(c *SearchCriteria) { c.AvoidOvernightLayover = true },
		func(c *SearchCriteria) { zero := 0; c.MaxLayovers = &zero },
	} {
		c := SearchCriteria{}
		mutate(&c)
		assert.False(t, c.IsUnconstrained())
	}
}
