// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
	PubSubProviderNoop    = "noop"
)

// Pub/Sub message attribute keys
const (
	AttributeEventID     = "event_id"
	AttributeRecipientID = "recipient_id"
	AttributeListingID   = "listing_id"
	AttributeKind        = "kind"
	AttributeRequestID   = "request_id"
)
