package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus tracks an outbox event through delivery.
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusDead      NotificationStatus = "dead" // Gave up after the maximum attempts.
)

// NotificationKind classifies the message sent to a listing owner.
type NotificationKind string

const (
	NotificationKindListingSubmitted   NotificationKind = "listing_submitted"
	NotificationKindDraftSaved         NotificationKind = "draft_saved"
	NotificationKindMLVerdict          NotificationKind = "ml_verdict"
	NotificationKindListingApproved    NotificationKind = "listing_approved"
	NotificationKindListingRejected    NotificationKind = "listing_rejected"
	NotificationKindVettingScheduled   NotificationKind = "vetting_scheduled"
	NotificationKindVettingIssue       NotificationKind = "vetting_issue"
	NotificationKindDuplicateCleared   NotificationKind = "duplicate_cleared"
	NotificationKindDuplicateRejected  NotificationKind = "duplicate_rejected"
	NotificationKindDuplicateSuspected NotificationKind = "duplicate_suspected"
	NotificationKindListingUnlisted    NotificationKind = "listing_unlisted"
)

// NotificationEvent is an outbox row written in the same transaction as the transition it
// describes. Delivery is at-least-once.
type NotificationEvent struct {
	ID            uuid.UUID          `json:"id"`
	RecipientID   uuid.UUID          `json:"recipient_id"` // The listing owner.
	ListingID     uuid.UUID          `json:"listing_id"`
	AuditEntryID  *uuid.UUID         `json:"audit_entry_id,omitempty"`
	Kind          NotificationKind   `json:"kind"`
	Title         string             `json:"title"`
	Body          string             `json:"body"`
	Payload       map[string]any     `json:"payload"` // Mirrors the triggering audit details.
	Status        NotificationStatus `json:"status"`
	Attempts      int                `json:"attempts"`
	NextAttemptAt time.Time          `json:"next_attempt_at"`
	LastError     string             `json:"last_error,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	DeliveredAt   *time.Time         `json:"delivered_at,omitempty"`
}
