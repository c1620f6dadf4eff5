package pubsub

import (
	"proptrust/internal/domain/constants"
	"proptrust/internal/domain/service"
)

// messageAttributes builds the routing and tracing attributes attached to every message.
func messageAttributes(event *service.NotificationEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeEventID:     event.EventID,
		constants.AttributeRecipientID: event.RecipientID,
		constants.AttributeListingID:   event.ListingID,
		constants.AttributeKind:        event.Kind,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}
