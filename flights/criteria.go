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
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/voyant-labs/voyant/core"
)

// Extractor turns free-text flight queries into SearchCriteria.
// Extraction never fails: text that matches no rule yields all-unconstrained
// criteria, so the filter engine filters too little rather than rejecting the
// query.
type Extractor struct {
	locations []string // Known location names, scanned in slice order
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithKnownLocations sets the location names the extractor recognizes as
// origins and destinations. Callers should pass a deterministically ordered
// slice (the catalog store returns its locations sorted).
func WithKnownLocations(locations []string) Option {
	return func(e *Extractor) error {
		e.locations = locations
		return nil
	}
}

// WithNow sets the reference clock used to default a year for month-only
// queries. Default is time.Now.
func WithNow(now func() time.Time) Option {
	return func(e *Extractor) error {
		if now == nil {
			now = time.Now
		}
		e.now = now
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExtractor creates a new criteria extractor.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Extract parses the query text into criteria. Each rule is applied
// independently; rules that do not match leave their field unconstrained.
func (e *Extractor) Extract(text string) core.SearchCriteria {
	var criteria core.SearchCriteria
	if strings.TrimSpace(text) == "" {
		return criteria
	}

	lower := strings.ToLower(text)
	tokens := tokenize(text)

	e.extractLocations(lower, &criteria)
	extractAlliance(lower, &criteria)
	extractMonth(tokens, lower, e.now(), &criteria)
	extractMaxPrice(lower, &criteria)
	extractRefundable(lower, &criteria)
	extractOvernight(tokens, &criteria)
	extractLayovers(lower, &criteria)

	e.logger.Debug("extracted criteria",
		"origin", criteria.Origin,
		"destination", criteria.Destination,
		"unconstrained", criteria.IsUnconstrained())
	return criteria
}

// extractLocations resolves origin and destination against the known location
// set. "from X" or "X to" marks an origin; "to X" or a bare mention marks a
// destination. The first matching location in slice order wins for each role.
func (e *Extractor) extractLocations(lower string, criteria *core.SearchCriteria) {
	for _, loc := range e.locations {
		cue := strings.ToLower(loc)
		if criteria.Origin == "" &&
			(strings.Contains(lower, "from "+cue) || strings.Contains(lower, cue+" to ")) {
			criteria.Origin = loc
		}
	}
	for _, loc := range e.locations {
		cue := strings.ToLower(loc)
		if loc == criteria.Origin {
			continue
		}
		if criteria.Destination == "" &&
			(strings.Contains(lower, "to "+cue) || strings.Contains(lower, cue)) {
			criteria.Destination = loc
		}
	}
}

// extractAlliance scans the alliance pattern table. Later matches overwrite
// earlier ones (last-match-wins in table order).
func extractAlliance(lower string, criteria *core.SearchCriteria) {
	for _, pattern := range alliancePatterns {
		if strings.Contains(lower, pattern.cue) {
			alliance := pattern.alliance
			criteria.Alliance = &alliance
		}
	}
}

// extractMonth finds the first month token and defaults the year to the next
// future occurrence of that month relative to now. A month equal to the
// current month maps to the current year; an explicit four-digit year in the
// text overrides the default.
func extractMonth(tokens []string, lower string, now time.Time, criteria *core.SearchCriteria) {
	for _, token := range tokens {
		month, ok := monthNames[token]
		if !ok {
			continue
		}
		criteria.Month = month
		if match := yearPattern.FindString(lower); match != "" {
			year, _ := strconv.Atoi(match)
			criteria.Year = year
		} else if month < now.Month() {
			criteria.Year = now.Year() + 1
		} else {
			criteria.Year = now.Year()
		}
		return
	}
}

// extractMaxPrice evaluates the price patterns in table order; the last value
// matched becomes the threshold.
func extractMaxPrice(lower string, criteria *core.SearchCriteria) {
	for _, pattern := range pricePatterns {
		matches := pattern.FindAllStringSubmatch(lower, -1)
		if len(matches) == 0 {
			continue
		}
		value, err := strconv.ParseFloat(matches[len(matches)-1][1], 64)
		if err != nil || value <= 0 {
			continue
		}
		criteria.MaxPriceUSD = &value
	}
}

// extractRefundable resolves refundable cues clause by clause, last clause
// wins. A clause sets the flag only when "refundable" appears without a
// negation cue in the same clause.
func extractRefundable(lower string, criteria *core.SearchCriteria) {
	for _, clause := range splitClauses(lower) {
		if !strings.Contains(clause, "refundable") {
			continue
		}
		criteria.RefundableOnly = !clauseNegatesRefundable(clause)
	}
}

func clauseNegatesRefundable(clause string) bool {
	if strings.Contains(clause, "non-refundable") ||
		strings.Contains(clause, "non refundable") ||
		strings.Contains(clause, "nonrefundable") {
		return true
	}
	for _, token := range tokenize(clause) {
		if negationCues[token] {
			return true
		}
	}
	return false
}

// extractOvernight sets the avoid flag when a negation cue appears within
// negationWindow tokens before an "overnight" token. The phrase without a
// negation never sets the flag (explicit opt-in only).
func extractOvernight(tokens []string, criteria *core.SearchCriteria) {
	for i, token := range tokens {
		if token != "overnight" {
			continue
		}
		start := i - negationWindow
		if start < 0 {
			start = 0
		}
		for _, previous := range tokens[start:i] {
			if negationCues[previous] {
				criteria.AvoidOvernightLayover = true
				return
			}
		}
	}
}

// extractLayovers resolves the max layover count: a numeral adjacent to a
// layover/stop noun first, then nonstop cues, which overwrite with zero.
func extractLayovers(lower string, criteria *core.SearchCriteria) {
	matches := layoverPattern.FindAllStringSubmatch(lower, -1)
	if len(matches) > 0 {
		raw := matches[len(matches)-1][1]
		count, ok := numberWords[raw]
		if !ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return
			}
			count = parsed
		}
		criteria.MaxLayovers = &count
	}
	for _, cue := range nonstopCues {
		if strings.Contains(lower, cue) {
			zero := 0
			criteria.MaxLayovers = &zero
		}
	}
}
