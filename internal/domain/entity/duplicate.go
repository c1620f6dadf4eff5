package entity

import "github.com/google/uuid"

// DuplicateType names the matcher pass that produced a candidate.
type DuplicateType string

const (
	DuplicateTypeExactAddress        DuplicateType = "exact_address"
	DuplicateTypeGeospatialProximity DuplicateType = "geospatial_proximity"
	DuplicateTypeSameOwner           DuplicateType = "same_owner"
)

// Rank orders types when confidence ties. Lower ranks first.
func (t DuplicateType) Rank() int {
	switch t {
	case DuplicateTypeExactAddress:
		return 0
	case DuplicateTypeGeospatialProximity:
		return 1
	default:
		return 2
	}
}

// Confidence is the strength of a duplicate match.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Score maps a confidence to a comparable integer. Higher is stronger.
func (c Confidence) Score() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// DuplicateCandidate is a listing suspected of describing the same property. It is derived
// on demand and never persisted.
type DuplicateCandidate struct {
	ListingID     uuid.UUID     `json:"listing_id"`
	DuplicateType DuplicateType `json:"duplicate_type"`
	Confidence    Confidence    `json:"confidence"`
	DistanceKm    *float64      `json:"distance_km,omitempty"`
	Status        ListingStatus `json:"status"`
	Address       string        `json:"address"`
}
