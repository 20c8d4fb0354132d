package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Alliance identifies the airline alliance a flight's operating carrier belongs to.
type Alliance int

const (
	// AllianceNone represents a carrier with no alliance membership.
	AllianceNone Alliance = iota
	// AllianceStar represents Star Alliance.
	AllianceStar
	// AllianceOneworld represents Oneworld.
	AllianceOneworld
	// AllianceSkyTeam represents SkyTeam.
	AllianceSkyTeam
)

// String returns the display name of the alliance.
func (a Alliance) String() string {
	switch a {
	case AllianceStar:
		return "Star Alliance"
	case AllianceOneworld:
		return "Oneworld"
	case AllianceSkyTeam:
		return "SkyTeam"
	default:
		return "None"
	}
}

// ParseAlliance maps an alliance display name to its Alliance value.
// Matching is case-insensitive; an empty string or "None" maps to AllianceNone.
// The second return value reports whether the name was recognized.
func ParseAlliance(name string) (Alliance, bool) {
	switch normalizeName(name) {
	case "", "none":
		return AllianceNone, true
	case "star alliance":
		return AllianceStar, true
	case "oneworld":
		return AllianceOneworld, true
	case "skyteam":
		return AllianceSkyTeam, true
	default:
		return AllianceNone, false
	}
}

// FlightRecord represents one bookable itinerary from the static catalog.
// Records are loaded once at startup and never mutated afterwards.
type FlightRecord struct {
	ID               string
	Airline          string
	Alliance         Alliance
	Origin           string
	Destination      string
	DepartureDate    time.Time
	ReturnDate       time.Time // Zero value means a one-way itinerary
	Layovers         []string  // Ordered layover locations; empty means nonstop
	OvernightLayover bool
	PriceUSD         float64
	Refundable       bool
}

// OneWay reports whether the record has no return leg.
func (f *FlightRecord) OneWay() bool {
	return f.ReturnDate.IsZero()
}

// SearchCriteria holds the independently optional constraints extracted from a
// free-text flight query. Absence of a field means "no filter on this
// dimension", never "filter for empty":
//   - Origin/Destination: empty string is unconstrained (locations are never empty)
//   - Month: zero is unconstrained; Year accompanies Month when set
//   - Alliance, MaxPriceUSD, MaxLayovers: nil is unconstrained (zero values
//     are meaningful data and must not act as sentinels)
//   - RefundableOnly, AvoidOvernightLayover: explicit opt-in filters; false
//     means unconstrained
type SearchCriteria struct {
	Origin                string
	Destination           string
	Month                 time.Month
	Year                  int
	Alliance              *Alliance
	MaxPriceUSD           *float64
	RefundableOnly        bool
	AvoidOvernightLayover bool
	MaxLayovers           *int
}

// IsUnconstrained reports whether no filter dimension is set.
func (c *SearchCriteria) IsUnconstrained() bool {
	return c.Origin == "" && c.Destination == "" && c.Month == 0 &&
		c.Alliance == nil && c.MaxPriceUSD == nil && !c.RefundableOnly &&
		!c.AvoidOvernightLayover && c.MaxLayovers == nil
}

// PolicyChunk is an immutable span of the policy document, the unit of
// retrieval. Start and End are byte offsets into the source text; Seq is the
// chunk's position in the document's chunk sequence. Vector is populated once
// the chunk has been embedded.
type PolicyChunk struct {
	Id     ID
	Seq    int
	Start  int
	End    int
	Text   string
	Vector []float32
}

// ChunkMatch pairs a retrieved chunk with its similarity score.
// A retrieval result is an ordered slice of ChunkMatch, descending by score,
// ties broken by ascending Seq so retrieval stays deterministic.
type ChunkMatch struct {
	Chunk *PolicyChunk
	Score float32
}
