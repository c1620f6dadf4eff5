package usecase

import (
	"context"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/repository"

	"github.com/google/uuid"
)

// DuplicateProbe describes the listing being checked. ListingID is uuid.Nil for a listing
// that has not been stored yet.
type DuplicateProbe struct {
	ListingID uuid.UUID
	OwnerID   uuid.UUID
	Address   string
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
}

// DuplicateMatcher finds existing listings that may describe the same property.
type DuplicateMatcher interface {
	// FindCandidates runs the exact-address, proximity and same-owner passes against the
	// given repository and returns one candidate per matched listing.
	FindCandidates(ctx context.Context, listings repository.ListingRepository, probe *DuplicateProbe) ([]entity.DuplicateCandidate, error)
}
