// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"proptrust/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingStale is returned when a conditional update matched no row because the
	// listing changed since it was read.
	ErrListingStale = errors.New("listing was modified concurrently")
)

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// UpdateIfUnchanged writes the listing only if the stored row still has the expected
	// status and version. It returns ErrListingStale otherwise.
	UpdateIfUnchanged(ctx context.Context, listing *entity.Listing, expectedStatus entity.ListingStatus, expectedVersion int64) error

	// FindByNormalizedAddress returns listings with the given normalized address, excluding
	// the given statuses and listing.
	FindByNormalizedAddress(ctx context.Context, normalized string, excludeID uuid.UUID, excludeStatuses []entity.ListingStatus) ([]*entity.Listing, error)

	// FindWithinBound returns listings with coordinates inside the bound, excluding the given
	// statuses and listing.
	FindWithinBound(ctx context.Context, bound orb.Bound, excludeID uuid.UUID, excludeStatuses []entity.ListingStatus) ([]*entity.Listing, error)

	// FindByOwnerInStatuses returns the owner's listings in any of the given statuses,
	// excluding the given listing.
	FindByOwnerInStatuses(ctx context.Context, ownerID uuid.UUID, statuses []entity.ListingStatus, excludeID uuid.UUID) ([]*entity.Listing, error)
}
