package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ListingStatus is the single source of truth for a listing's visibility.
type ListingStatus string

const (
	ListingStatusDraft               ListingStatus = "draft"
	ListingStatusPendingMLValidation ListingStatus = "pending_ml_validation"
	ListingStatusPendingVetting      ListingStatus = "pending_vetting"
	ListingStatusLive                ListingStatus = "live"
	ListingStatusRejected            ListingStatus = "rejected"
	ListingStatusUnlisted            ListingStatus = "unlisted"
	ListingStatusDuplicateCheck      ListingStatus = "duplicate_check"
)

// String returns the string representation of the status.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusPendingMLValidation, ListingStatusPendingVetting,
		ListingStatusLive, ListingStatusRejected, ListingStatusUnlisted, ListingStatusDuplicateCheck:
		return true
	default:
		return false
	}
}

// IsPrePublication reports whether the listing has not been published yet.
func (s ListingStatus) IsPrePublication() bool {
	switch s {
	case ListingStatusDraft, ListingStatusPendingMLValidation, ListingStatusPendingVetting:
		return true
	default:
		return false
	}
}

// PrePublicationStatuses lists the statuses checked by the same-owner duplicate pass.
func PrePublicationStatuses() []ListingStatus {
	return []ListingStatus{
		ListingStatusDraft,
		ListingStatusPendingMLValidation,
		ListingStatusPendingVetting,
	}
}

// MLVerdict is the automated document analysis result consumed by the pipeline.
type MLVerdict string

const (
	MLVerdictPassed         MLVerdict = "passed"
	MLVerdictFailed         MLVerdict = "failed"
	MLVerdictReviewRequired MLVerdict = "review_required"
)

// IsValid checks if the verdict is known.
func (v MLVerdict) IsValid() bool {
	return v == MLVerdictPassed || v == MLVerdictFailed || v == MLVerdictReviewRequired
}

// Listing is a property submission moving through the verification pipeline.
//
// Status is exclusive. IsDuplicate and FlaggedForReview are independent annotations:
// IsDuplicate is set by the duplicate matcher or an admin flag and only cleared by a
// keep_both resolution; a rejected duplicate keeps IsDuplicate=true. FlaggedForReview is set
// by an ML review_required verdict or a vetting flag_issue decision and is never cleared by
// the pipeline.
type Listing struct {
	ID                   uuid.UUID     `json:"id"`
	OwnerID              uuid.UUID     `json:"owner_id"` // Immutable after creation.
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Price                *float64      `json:"price,omitempty"`
	Address              string        `json:"address"`
	NormalizedAddress    string        `json:"-"`
	Latitude             *float64      `json:"latitude,omitempty"`  // WGS84 decimal degrees.
	Longitude            *float64      `json:"longitude,omitempty"` // WGS84 decimal degrees.
	Status               ListingStatus `json:"status"`
	IsDuplicate          bool          `json:"is_duplicate"`
	FlaggedForReview     bool          `json:"flagged_for_review"`
	VerifiedAt           *time.Time    `json:"verified_at,omitempty"`      // Set only on entering live.
	RejectionReason      string        `json:"rejection_reason,omitempty"` // Set only on entering rejected.
	ScheduledVettingDate *time.Time    `json:"scheduled_vetting_date,omitempty"`
	MLVerdict            MLVerdict     `json:"ml_verdict,omitempty"`
	MLConfidenceScore    *float64      `json:"ml_confidence_score,omitempty"`
	Version              int64         `json:"version"` // Bumped on every mutation.
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Point returns the listing location as an orb point (lon, lat).
func (l *Listing) Point() (orb.Point, bool) {
	if !l.HasCoordinates() {
		return orb.Point{}, false
	}

	return orb.Point{*l.Longitude, *l.Latitude}, true
}

// IsOwnedBy reports whether the given account owns the listing.
func (l *Listing) IsOwnedBy(accountID uuid.UUID) bool {
	return l.OwnerID == accountID
}

// Clone returns a deep copy so callers can compute a next state without mutating the original.
func (l *Listing) Clone() *Listing {
	c := *l
	c.Price = cloneFloat(l.Price)
	c.Latitude = cloneFloat(l.Latitude)
	c.Longitude = cloneFloat(l.Longitude)
	c.MLConfidenceScore = cloneFloat(l.MLConfidenceScore)
	c.VerifiedAt = cloneTime(l.VerifiedAt)
	c.ScheduledVettingDate = cloneTime(l.ScheduledVettingDate)

	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f

	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

// NormalizeAddress lowercases an address, strips punctuation and collapses whitespace so
// "12 Admiralty Way, Lekki" and "12  admiralty way lekki." compare equal.
func NormalizeAddress(address string) string {
	var b strings.Builder
	b.Grow(len(address))

	pendingSpace := false
	for _, r := range strings.ToLower(address) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}

	return b.String()
}
