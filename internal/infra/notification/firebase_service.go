// Package notification implements push delivery through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"proptrust/config"
	"proptrust/internal/domain/service"
	"proptrust/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Pipeline notifications collapse per listing so a device only shows the latest state.
const collapseKeyData = "listing_id"

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var firebaseConfig *firebase.Config
	if cfg.ProjectID != "" {
		firebaseConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	opts := make([]option.ClientOption, 0, 1)
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, firebaseConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

func (s *firebaseService) Push(ctx context.Context, msg *service.PushMessage) (*service.PushResult, error) {
	if len(msg.Tokens) == 0 {
		return &service.PushResult{}, nil
	}

	if len(msg.Tokens) > service.MaxPushTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), service.MaxPushTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	return &service.PushResult{
		Sent:          response.SuccessCount,
		Failed:        response.FailureCount,
		InvalidTokens: invalidTokens(msg.Tokens, response.Responses),
	}, nil
}

func buildMulticast(msg *service.PushMessage) *messaging.MulticastMessage {
	collapseKey := msg.Data[collapseKeyData]

	return &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			CollapseKey: collapseKey,
			Priority:    "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: apnsHeaders(collapseKey),
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}

func apnsHeaders(collapseKey string) map[string]string {
	if collapseKey == "" {
		return nil
	}

	return map[string]string{"apns-collapse-id": collapseKey}
}

// invalidTokens pairs per-token responses with the tokens they were sent to.
func invalidTokens(tokens []string, responses []*messaging.SendResponse) []string {
	var invalid []string
	for idx, resp := range responses {
		if idx >= len(tokens) || resp == nil || resp.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(resp.Error) || messaging.IsUnregistered(resp.Error) {
			invalid = append(invalid, tokens[idx])
		}
	}

	return invalid
}

// logOnlyService stands in for FCM when Firebase is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

// NewLogOnlyService returns a NotificationService that only logs what it would send.
func NewLogOnlyService(logger *slog.Logger) service.NotificationService {
	return &logOnlyService{logger: logger}
}

func (s *logOnlyService) Push(ctx context.Context, msg *service.PushMessage) (*service.PushResult, error) {
	s.logger.InfoContext(ctx, "[LogOnlyPush] Firebase disabled, skipping push",
		slog.Int("token_count", len(msg.Tokens)),
		slog.String("title", msg.Title),
		slog.String("event_id", msg.Data["event_id"]),
	)

	return &service.PushResult{Sent: len(msg.Tokens)}, nil
}
