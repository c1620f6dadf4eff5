package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the state-changing action recorded by an audit entry.
type AuditAction string

const (
	AuditActionListingSubmitted    AuditAction = "listing.submitted"
	AuditActionDraftSaved          AuditAction = "listing.draft_saved"
	AuditActionDraftSubmitted      AuditAction = "listing.draft_submitted"
	AuditActionMLVerdictRecorded   AuditAction = "listing.ml_verdict_recorded"
	AuditActionVettingApproved     AuditAction = "listing.vetting_approved"
	AuditActionVettingRejected     AuditAction = "listing.vetting_rejected"
	AuditActionVettingScheduled    AuditAction = "listing.vetting_scheduled"
	AuditActionVettingIssueFlagged AuditAction = "listing.vetting_issue_flagged"
	AuditActionDuplicateKeptBoth   AuditAction = "listing.duplicate_kept_both"
	AuditActionDuplicateKeptMaster AuditAction = "listing.duplicate_kept_master"
	AuditActionDuplicateRejected   AuditAction = "listing.duplicate_rejected"
	AuditActionDuplicateFlagged    AuditAction = "listing.duplicate_flagged"
	AuditActionListingUnlisted     AuditAction = "listing.unlisted"
)

// Audit detail keys shared by every entry.
const (
	AuditDetailPreviousStatus = "previous_status"
	AuditDetailNewStatus      = "new_status"
	AuditDetailNotes          = "notes"
)

// AuditEntry is an immutable record of a state-changing action. Once written it is never
// updated or deleted.
type AuditEntry struct {
	ID        uuid.UUID      `json:"id"`
	ActorID   uuid.UUID      `json:"actor_id"`
	Action    AuditAction    `json:"action"`
	TargetID  uuid.UUID      `json:"target_id"`
	Details   map[string]any `json:"details"`
	RequestID string         `json:"request_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
