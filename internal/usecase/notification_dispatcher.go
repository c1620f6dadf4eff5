package usecase

import (
	"context"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/repository"

	"github.com/google/uuid"
)

// NotificationMessage is the content of one owner notification.
type NotificationMessage struct {
	RecipientID  uuid.UUID
	ListingID    uuid.UUID
	AuditEntryID *uuid.UUID
	Kind         entity.NotificationKind
	Title        string
	Body         string
	Payload      map[string]any
}

// DeliveryReport summarizes one relay run.
type DeliveryReport struct {
	Fetched   int
	Delivered int
	Deferred  int
	Retried   int
	Dead      int
}

// NotificationDispatcher queues owner notifications in the outbox and relays them.
type NotificationDispatcher interface {
	// Notify enqueues a message through the given outbox repository, which is bound to
	// the transition's transaction.
	Notify(ctx context.Context, outbox repository.OutboxRepository, msg *NotificationMessage) (*entity.NotificationEvent, error)

	// DeliverPending publishes due outbox events. Failures are retried with backoff and
	// never affect the listing.
	DeliverPending(ctx context.Context) (*DeliveryReport, error)
}
