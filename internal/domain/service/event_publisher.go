package service

import (
	"context"
	"time"
)

// NotificationEvent is the message relayed from the outbox to the push worker.
// EventID is the outbox row id; consumers de-duplicate on it.
type NotificationEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	EventID     string            `json:"event_id"`
	RecipientID string            `json:"recipient_id"`
	ListingID   string            `json:"listing_id"`
	Kind        string            `json:"kind"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"` // Flattened payload for push data fields
	OccurredAt  time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
