package repository

import (
	"context"
	"time"

	"proptrust/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when an outbox event is not found.
var ErrNotificationNotFound = errors.New("notification event not found")

// OutboxRepository stores notification events written alongside listing transitions.
type OutboxRepository interface {
	// Enqueue inserts a pending event.
	Enqueue(ctx context.Context, event *entity.NotificationEvent) error

	// FetchDue returns up to limit pending events whose next attempt is due, oldest first.
	FetchDue(ctx context.Context, now time.Time, limit int) ([]*entity.NotificationEvent, error)

	// MarkDelivered records a successful delivery.
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) error

	// MarkRetry records a failed or deferred attempt and schedules the next one.
	// When dead is true the event is given up on.
	MarkRetry(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string, dead bool) error

	// Defer postpones an event without counting an attempt.
	Defer(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time) error

	// ListByListing returns the events of a listing ordered by creation time.
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.NotificationEvent, error)
}
