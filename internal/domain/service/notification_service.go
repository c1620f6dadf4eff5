package service

import (
	"context"
)

// MaxPushTokens is the largest token set a single PushMessage may carry.
const MaxPushTokens = 500

// PushMessage is one notification fanned out to a set of device tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// PushResult reports a multicast send. InvalidTokens lists tokens the provider reported as
// unregistered or malformed; their devices should stop receiving pushes.
type PushResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to devices.
type NotificationService interface {
	// Push sends msg to at most MaxPushTokens tokens. An error means nothing was sent.
	Push(ctx context.Context, msg *PushMessage) (*PushResult, error)
}
