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

import (
	"fmt"
	"strings"

	"github.com/voyant-labs/voyant/core"
)

const maxDisplayedFlights = 5

// formatFlight renders a single flight record for terminal output.
func formatFlight(flight *core.FlightRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nFlight %s:\n", flight.ID)
	fmt.Fprintf(&b, "  Airline: %s (%s)\n", flight.Airline, flight.Alliance)
	fmt.Fprintf(&b, "  Route: %s -> %s\n", flight.Origin, flight.Destination)

	if len(flight.Layovers) > 0 {
		overnight := ""
		if flight.OvernightLayover {
			overnight = " (overnight)"
		}
		fmt.Fprintf(&b, "  Layovers: %s%s\n", strings.Join(flight.Layovers, ", "), overnight)
	}

	if flight.OneWay() {
		fmt.Fprintf(&b, "  Dates: %s (one-way)\n", flight.DepartureDate.Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "  Dates: %s to %s\n",
			flight.DepartureDate.Format("2006-01-02"),
			flight.ReturnDate.Format("2006-01-02"))
	}

	fmt.Fprintf(&b, "  Price: $%.0f USD\n", flight.PriceUSD)

	refundable := "No"
	if flight.Refundable {
		refundable = "Yes"
	}
	fmt.Fprintf(&b, "  Refundable: %s\n", refundable)

	return b.String()
}

// formatFlightList renders search results, capped at maxDisplayedFlights.
// An empty result gets its own distinct message.
func formatFlightList(results []core.FlightRecord) string {
	if len(results) == 0 {
		return "No flights found matching your criteria."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d flight(s):\n", len(results))
	b.WriteString(strings.Repeat("=", 50) + "\n")

	shown := results
	if len(shown) > maxDisplayedFlights {
		shown = shown[:maxDisplayedFlights]
	}

	for i := range shown {
		b.WriteString(formatFlight(&shown[i]))
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}

	if len(results) > maxDisplayedFlights {
		fmt.Fprintf(&b, "\n(Showing top %d of %d results)", maxDisplayedFlights, len(results))
	}

	return b.String()
}
