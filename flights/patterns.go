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
	"regexp"
	"strings"
	"time"

	"github.com/voyant-labs/voyant/core"
)

// The extraction rules are declarative (pattern, effect) tables evaluated in
// the fixed order they are listed here. When two entries in the same table
// match, the later match wins; that tie-break is deliberate and keeps
// extraction deterministic.

// alliancePattern maps a lowercase cue to the alliance it implies.
// Member-airline names map to their alliance.
type alliancePattern struct {
	cue      string
	alliance core.Alliance
}

var alliancePatterns = []alliancePattern{
	{"star alliance", core.AllianceStar},
	{"oneworld", core.AllianceOneworld},
	{"skyteam", core.AllianceSkyTeam},
	// Star Alliance member carriers.
	{"lufthansa", core.AllianceStar},
	{"united airlines", core.AllianceStar},
	{"air canada", core.AllianceStar},
	{"singapore airlines", core.AllianceStar},
	{"turkish airlines", core.AllianceStar},
	{"swiss", core.AllianceStar},
	{"ana", core.AllianceStar},
	{"thai airways", core.AllianceStar},
	{"egyptair", core.AllianceStar},
	// Oneworld member carriers.
	{"american airlines", core.AllianceOneworld},
	{"british airways", core.AllianceOneworld},
	{"cathay pacific", core.AllianceOneworld},
	{"qantas", core.AllianceOneworld},
	{"qatar airways", core.AllianceOneworld},
	{"japan airlines", core.AllianceOneworld},
	{"finnair", core.AllianceOneworld},
	{"royal jordanian", core.AllianceOneworld},
	// SkyTeam member carriers.
	{"delta", core.AllianceSkyTeam},
	{"air france", core.AllianceSkyTeam},
	{"klm", core.AllianceSkyTeam},
	{"korean air", core.AllianceSkyTeam},
	{"saudia", core.AllianceSkyTeam},
	{"vietnam airlines", core.AllianceSkyTeam},
	{"aeromexico", core.AllianceSkyTeam},
}

// monthNames maps full and three-letter month tokens to months.
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// negationCues are tokens that negate a nearby preference cue.
var negationCues = map[string]bool{
	"avoid":    true,
	"avoiding": true,
	"no":       true,
	"not":      true,
	"without":  true,
}

// negationWindow is the number of tokens before an "overnight" cue that are
// scanned for a negation cue. Presence of "overnight" alone never sets the
// avoid flag; the negation must appear within this window.
const negationWindow = 3

// pricePatterns are evaluated in order against the lowercased query text.
// The last value matched (across patterns, in occurrence order within each
// pattern) becomes the max-price threshold.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:under|below|less than)\s+\$?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`\$\s?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s?(?:usd|dollars)`),
}

// layoverPattern matches a numeral or number word adjacent to a layover/stop
// noun, e.g. "2 layovers", "one stop".
var layoverPattern = regexp.MustCompile(`(\d+|zero|one|two|three)[\s-]+(?:layovers?|stops?)`)

// numberWords maps spelled-out counts used by layoverPattern.
var numberWords = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
}

// nonstopCues imply a max layover count of zero. Evaluated after
// layoverPattern, so an explicit nonstop cue overwrites a numeral.
var nonstopCues = []string{"nonstop", "non-stop", "non stop", "direct"}

// yearPattern matches an explicit four-digit year.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// tokenize splits text into lowercase tokens with surrounding punctuation
// trimmed. Negation and month detection work on these tokens rather than raw
// substrings so cues inside larger words do not fire.
func tokenize(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"-()[]{}")
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

// splitClauses splits text into clauses on commas, semicolons and periods.
// Refundable cues are resolved per clause.
func splitClauses(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '.'
	})
}
