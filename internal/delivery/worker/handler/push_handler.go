package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"proptrust/config"
	deliverycontext "proptrust/internal/delivery/context"
	"proptrust/internal/domain/constants"
	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/repository"
	"proptrust/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Tokens per provider call.
const maxTokensPerBatch = service.MaxPushTokens

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler delivers relayed listing notifications to the recipient's devices.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
	dedup           service.DeliveryDeduplicator
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
	Dedup           service.DeliveryDeduplicator
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
		dedup:           params.Dedup,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; 200 acknowledges, including messages that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("kind", event.Kind),
		slog.String("listing_id", event.ListingID),
	)

	if err := h.processNotification(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process notification",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.NotificationEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttributeRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processNotification delivers an event at most once per de-duplication window. A claim is
// released when delivery fails in a way Pub/Sub should retry.
func (h *PushHandler) processNotification(ctx context.Context, event *service.NotificationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.EventID == "" {
		return errors.New("event_id is required")
	}
	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return errors.Wrap(err, "invalid recipient_id")
	}

	first, err := h.dedup.Claim(ctx, event.EventID)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to claim event"))
	}
	if !first {
		logger.Info("[Worker] Duplicate delivery dropped")

		return nil
	}

	if err := h.deliver(ctx, recipientID, event); err != nil {
		if isRetryableError(err) {
			if releaseErr := h.dedup.Release(ctx, event.EventID); releaseErr != nil {
				logger.Warn("[Worker] Failed to release event claim", slog.Any("error", releaseErr))
			}
		}

		return err
	}

	return nil
}

func (h *PushHandler) deliver(ctx context.Context, recipientID uuid.UUID, event *service.NotificationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	devices, err := h.deviceRepo.FindActiveDevicesByOwner(ctx, recipientID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if len(devices) == 0 {
		logger.Info("[Worker] Recipient has no active devices",
			slog.String("recipient_id", event.RecipientID),
		)

		return nil
	}

	sent, failed, invalidTokens, sendErr := h.sendBatched(ctx, collectTokens(devices), event)
	h.cleanupInvalidTokens(ctx, invalidTokens)

	logger.Info("[Worker] Notification sending completed",
		slog.Int("devices", len(devices)),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	// Nothing reached the recipient and the provider failed: let Pub/Sub redeliver.
	if sent == 0 && sendErr != nil {
		return newRetryableError(sendErr)
	}

	return nil
}

// sendBatched sends in FCM-sized batches. A failed batch counts all its tokens as failed
// and the last batch error is returned.
func (h *PushHandler) sendBatched(ctx context.Context, tokens []string, event *service.NotificationEvent) (sent, failed int, invalidTokens []string, lastErr error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	data := pushData(event)

	for start := 0; start < len(tokens); start += maxTokensPerBatch {
		batch := tokens[start:min(start+maxTokensPerBatch, len(tokens))]

		result, err := h.notificationSvc.Push(ctx, &service.PushMessage{
			Tokens: batch,
			Title:  event.Title,
			Body:   event.Body,
			Data:   data,
		})
		if err != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			failed += len(batch)
			lastErr = errors.WithStack(err)

			continue
		}

		sent += result.Sent
		failed += result.Failed
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	return sent, failed, invalidTokens, lastErr
}

// cleanupInvalidTokens deactivates devices whose tokens the provider rejected.
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	if err := h.deviceRepo.DeactivateByTokens(ctx, invalidTokens, uuid.Nil); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to deactivate invalid devices",
			slog.Int("count", len(invalidTokens)),
			slog.Any("error", err),
		)
	}
}

func collectTokens(devices []*entity.Device) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}

	return tokens
}

// pushData is the data map attached to the push message.
func pushData(event *service.NotificationEvent) map[string]string {
	data := make(map[string]string, len(event.Data)+3)
	for key, value := range event.Data {
		data[key] = value
	}
	data[constants.AttributeEventID] = event.EventID
	data[constants.AttributeListingID] = event.ListingID
	data[constants.AttributeKind] = event.Kind

	return data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
