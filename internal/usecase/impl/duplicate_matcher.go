package impl

import (
	"cmp"
	"context"
	"math"
	"slices"

	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/geo"
	"proptrust/internal/domain/repository"
	"proptrust/internal/errors"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
)

// Proximity confidence bands in kilometers.
const (
	proximityHighBelowKm   = 0.05
	proximityMediumBelowKm = 0.2
)

type duplicateMatcher struct{}

// NewDuplicateMatcher creates the three-pass duplicate matcher.
func NewDuplicateMatcher() usecase.DuplicateMatcher {
	return &duplicateMatcher{}
}

// FindCandidates unions the exact-address, proximity and same-owner passes. A listing matched
// by several passes appears once with the strongest confidence; results are sorted by
// confidence, pass and id so a fixed data set always yields the same list.
func (m *duplicateMatcher) FindCandidates(ctx context.Context, listings repository.ListingRepository, probe *usecase.DuplicateProbe) ([]entity.DuplicateCandidate, error) {
	if !(probe.RadiusKm > 0) || math.IsInf(probe.RadiusKm, 1) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search radius must be positive")
	}
	if probe.Latitude != nil && !geo.ValidLatitude(*probe.Latitude) ||
		probe.Longitude != nil && !geo.ValidLongitude(*probe.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search coordinates are out of range")
	}

	merged := make(map[uuid.UUID]entity.DuplicateCandidate)
	excluded := []entity.ListingStatus{entity.ListingStatusRejected}

	if normalized := entity.NormalizeAddress(probe.Address); normalized != "" {
		matches, err := listings.FindByNormalizedAddress(ctx, normalized, probe.ListingID, excluded)
		if err != nil {
			return nil, errors.Wrap(err, "exact address pass failed")
		}
		for _, l := range matches {
			mergeCandidate(merged, newCandidate(l, entity.DuplicateTypeExactAddress, entity.ConfidenceHigh, nil))
		}
	}

	if probe.Latitude != nil && probe.Longitude != nil {
		origin := &entity.Listing{Latitude: probe.Latitude, Longitude: probe.Longitude}
		center, _ := origin.Point()

		nearby, err := listings.FindWithinBound(ctx, geo.BoundAround(center, probe.RadiusKm), probe.ListingID, excluded)
		if err != nil {
			return nil, errors.Wrap(err, "proximity pass failed")
		}
		for _, l := range nearby {
			point, ok := l.Point()
			if !ok {
				continue
			}
			distance := geo.DistanceKm(center, point)
			if !(distance <= probe.RadiusKm) {
				continue
			}
			mergeCandidate(merged, newCandidate(l, entity.DuplicateTypeGeospatialProximity, proximityConfidence(distance), &distance))
		}
	}

	if probe.OwnerID != uuid.Nil {
		owned, err := listings.FindByOwnerInStatuses(ctx, probe.OwnerID, entity.PrePublicationStatuses(), probe.ListingID)
		if err != nil {
			return nil, errors.Wrap(err, "same owner pass failed")
		}
		for _, l := range owned {
			mergeCandidate(merged, newCandidate(l, entity.DuplicateTypeSameOwner, entity.ConfidenceHigh, nil))
		}
	}

	candidates := make([]entity.DuplicateCandidate, 0, len(merged))
	for _, c := range merged {
		candidates = append(candidates, c)
	}
	slices.SortFunc(candidates, compareCandidates)

	return candidates, nil
}

func proximityConfidence(distanceKm float64) entity.Confidence {
	switch {
	case distanceKm < proximityHighBelowKm:
		return entity.ConfidenceHigh
	case distanceKm < proximityMediumBelowKm:
		return entity.ConfidenceMedium
	default:
		return entity.ConfidenceLow
	}
}

func newCandidate(l *entity.Listing, duplicateType entity.DuplicateType, confidence entity.Confidence, distanceKm *float64) entity.DuplicateCandidate {
	return entity.DuplicateCandidate{
		ListingID:     l.ID,
		DuplicateType: duplicateType,
		Confidence:    confidence,
		DistanceKm:    distanceKm,
		Status:        l.Status,
		Address:       l.Address,
	}
}

// mergeCandidate keeps the stronger of two matches for the same listing. Equal confidence
// prefers exact address over proximity over same owner. A computed distance is never lost.
func mergeCandidate(merged map[uuid.UUID]entity.DuplicateCandidate, c entity.DuplicateCandidate) {
	existing, ok := merged[c.ListingID]
	if !ok {
		merged[c.ListingID] = c

		return
	}

	winner, loser := existing, c
	if stronger(c, existing) {
		winner, loser = c, existing
	}
	if winner.DistanceKm == nil {
		winner.DistanceKm = loser.DistanceKm
	}
	merged[c.ListingID] = winner
}

func stronger(a, b entity.DuplicateCandidate) bool {
	if a.Confidence.Score() != b.Confidence.Score() {
		return a.Confidence.Score() > b.Confidence.Score()
	}

	return a.DuplicateType.Rank() < b.DuplicateType.Rank()
}

func compareCandidates(a, b entity.DuplicateCandidate) int {
	if c := cmp.Compare(b.Confidence.Score(), a.Confidence.Score()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.DuplicateType.Rank(), b.DuplicateType.Rank()); c != 0 {
		return c
	}

	return cmp.Compare(a.ListingID.String(), b.ListingID.String())
}
