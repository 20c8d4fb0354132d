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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/voyant-labs/voyant/core"
)

// dateLayout is the departure/return date format used by the catalog source.
const dateLayout = "2006-01-02"

// Store is an immutable in-memory collection of flight records.
// It is built once at startup and is safe for concurrent reads.
type Store struct {
	records []core.FlightRecord
}

// flightJSON mirrors one record of the catalog source file.
type flightJSON struct {
	FlightID         string   `json:"flight_id"`
	Airline          string   `json:"airline"`
	Alliance         string   `json:"alliance"`
	From             string   `json:"from"`
	To               string   `json:"to"`
	DepartureDate    string   `json:"departure_date"`
	ReturnDate       string   `json:"return_date"`
	Layovers         []string `json:"layovers"`
	OvernightLayover bool     `json:"overnight_layover"`
	PriceUSD         float64  `json:"price_usd"`
	Refundable       bool     `json:"refundable"`
}

// NewStore builds a store from already-decoded records.
// Every record is validated; the first invalid record fails the build with an
// error wrapping core.ErrData.
func NewStore(records []core.FlightRecord) (*Store, error) {
	for i := range records {
		if err := core.ValidateFlightRecord(&records[i]); err != nil {
			return nil, err
		}
	}
	return &Store{records: slices.Clone(records)}, nil
}

// Load reads and validates a JSON catalog source.
// A missing or malformed required field fails the load with an error wrapping
// core.ErrData that names the record and field.
func Load(r io.Reader) (*Store, error) {
	var raw []flightJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding catalog: %v", core.ErrData, err)
	}

	records := make([]core.FlightRecord, 0, len(raw))
	for _, entry := range raw {
		record, err := decodeFlight(entry)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return NewStore(records)
}

// LoadFile opens and loads a JSON catalog file.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening catalog %s: %v", core.ErrData, path, err)
	}
	defer f.Close()
	return Load(f)
}

// decodeFlight converts one source entry into a validated FlightRecord.
func decodeFlight(entry flightJSON) (core.FlightRecord, error) {
	var record core.FlightRecord

	alliance, ok := core.ParseAlliance(entry.Alliance)
	if !ok {
		return record, fieldError(entry.FlightID, "alliance", fmt.Sprintf("unknown alliance %q", entry.Alliance))
	}

	departure, err := parseDate(entry.FlightID, "departure_date", entry.DepartureDate, true)
	if err != nil {
		return record, err
	}
	returnDate, err := parseDate(entry.FlightID, "return_date", entry.ReturnDate, false)
	if err != nil {
		return record, err
	}

	record = core.FlightRecord{
		ID:               entry.FlightID,
		Airline:          entry.Airline,
		Alliance:         alliance,
		Origin:           entry.From,
		Destination:      entry.To,
		DepartureDate:    departure,
		ReturnDate:       returnDate,
		Layovers:         entry.Layovers,
		OvernightLayover: entry.OvernightLayover,
		PriceUSD:         entry.PriceUSD,
		Refundable:       entry.Refundable,
	}
	if err := core.ValidateFlightRecord(&record); err != nil {
		return record, err
	}
	return record, nil
}

// parseDate parses a catalog date field. An empty optional field yields the
// zero time; an empty required field or an unparsable value is a data error.
func parseDate(recordID, field, value string, required bool) (time.Time, error) {
	if value == "" {
		if required {
			return time.Time{}, fieldError(recordID, field, "must be set")
		}
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fieldError(recordID, field, fmt.Sprintf("invalid date %q", value))
	}
	return t, nil
}

func fieldError(recordID, field, msg string) error {
	if recordID == "" {
		recordID = "(unknown)"
	}
	return fmt.Errorf("%w: record %q field %q %s", core.ErrData, recordID, field, msg)
}

// Len returns the number of records in the catalog.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the catalog records. The returned slice is shared and must
// be treated as read-only; the store never mutates it after construction.
func (s *Store) Records() []core.FlightRecord {
	return s.records
}

// Locations returns the sorted distinct origin and destination names in the
// catalog. The extractor uses this set to recognize locations in free text.
func (s *Store) Locations() []string {
	seen := make(map[string]bool, len(s.records)*2)
	var locations []string
	for i := range s.records {
		for _, loc := range []string{s.records[i].Origin, s.records[i].Destination} {
			if !seen[loc] {
				seen[loc] = true
				locations = append(locations, loc)
			}
		}
	}
	slices.Sort(locations)
	return locations
}
