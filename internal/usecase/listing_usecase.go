package usecase

import (
	"context"
	"time"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/verification"

	"github.com/google/uuid"
)

// ListingDraft is a new listing submitted by its owner.
type ListingDraft struct {
	Title       string
	Description string
	Price       *float64
	Address     string
	Latitude    *float64
	Longitude   *float64
	SaveAsDraft bool
}

// MLVerdictInput is the automated analyzer's result for a listing.
type MLVerdictInput struct {
	ListingID       uuid.UUID
	Verdict         entity.MLVerdict
	ConfidenceScore *float64
	Notes           string
	FlaggedIssues   []string
}

// VettingDecisionInput is a vetting agent's decision on a listing.
type VettingDecisionInput struct {
	ListingID       uuid.UUID
	Action          verification.VettingAction
	Notes           string
	ScheduledDate   *time.Time
	RejectionReason string
}

// DuplicateResolutionInput is an admin's resolution of a suspected duplicate.
type DuplicateResolutionInput struct {
	ListingID       uuid.UUID
	Action          verification.ResolutionAction
	MasterListingID *uuid.UUID
	RejectionReason string
	Notes           string
}

// DuplicateCheckInput re-runs the matcher for a stored listing. Nil overrides fall back to
// the stored listing's values and the configured default radius.
type DuplicateCheckInput struct {
	ListingID uuid.UUID
	Address   *string
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// PipelineResult is the listing after an accepted operation and a user-facing message.
type PipelineResult struct {
	Listing *entity.Listing
	Message string
}

// DuplicateCheckResult is the matcher output for a listing.
type DuplicateCheckResult struct {
	ListingID  uuid.UUID
	RadiusKm   float64
	Candidates []entity.DuplicateCandidate
}

// ListingUsecase sequences authorization, validation, duplicate matching, the verification
// state machine, the audit log and notifications for every listing operation.
type ListingUsecase interface {
	// SubmitListing validates a new listing, runs the duplicate matcher and places it in
	// pending_ml_validation, or draft when SaveAsDraft is set.
	SubmitListing(ctx context.Context, actor entity.Actor, draft *ListingDraft) (*PipelineResult, error)

	// SubmitDraft moves an owner's draft to pending_ml_validation.
	SubmitDraft(ctx context.Context, actor entity.Actor, listingID uuid.UUID) (*PipelineResult, error)

	// RecordMLVerdict applies the analyzer result to a pending_ml_validation listing.
	RecordMLVerdict(ctx context.Context, actor entity.Actor, input *MLVerdictInput) (*PipelineResult, error)

	// RecordVettingDecision applies a vetting decision to a pending_vetting listing.
	RecordVettingDecision(ctx context.Context, actor entity.Actor, input *VettingDecisionInput) (*PipelineResult, error)

	// ResolveDuplicate applies an admin resolution to a suspected duplicate.
	ResolveDuplicate(ctx context.Context, actor entity.Actor, input *DuplicateResolutionInput) (*PipelineResult, error)

	// FlagDuplicate marks a listing as a suspected duplicate.
	FlagDuplicate(ctx context.Context, actor entity.Actor, listingID uuid.UUID, notes string) (*PipelineResult, error)

	// UnlistListing takes a live listing off the market.
	UnlistListing(ctx context.Context, actor entity.Actor, listingID uuid.UUID, notes string) (*PipelineResult, error)

	// CheckDuplicates runs the matcher for a stored listing without changing it.
	CheckDuplicates(ctx context.Context, actor entity.Actor, input *DuplicateCheckInput) (*DuplicateCheckResult, error)

	// ListAuditTrail returns the audit entries of a listing, oldest first.
	ListAuditTrail(ctx context.Context, actor entity.Actor, listingID uuid.UUID) ([]*entity.AuditEntry, error)

	// GetListing returns a listing visible to the actor.
	GetListing(ctx context.Context, actor entity.Actor, listingID uuid.UUID) (*entity.Listing, error)
}
