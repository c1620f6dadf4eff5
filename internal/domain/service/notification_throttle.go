package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NotificationThrottle is a shared, expiring per-recipient send counter.
type NotificationThrottle interface {
	// Allow consumes one send for the recipient. When the window is exhausted it returns
	// false and how long until the window resets.
	Allow(ctx context.Context, recipientID uuid.UUID) (allowed bool, retryAfter time.Duration, err error)
}

// DeliveryDeduplicator remembers delivered event ids for a limited time so redelivered
// messages are dropped by the consumer.
type DeliveryDeduplicator interface {
	// Claim records the event id and reports whether this is the first claim.
	Claim(ctx context.Context, eventID string) (first bool, err error)

	// Release forgets a claim so a failed delivery can be retried.
	Release(ctx context.Context, eventID string) error
}
