package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"proptrust/config"
	deliverycontext "proptrust/internal/delivery/context"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/repository"
	"proptrust/internal/domain/service"
	"proptrust/internal/errors"
	"proptrust/internal/infra/metrics"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxRetryBackoff = time.Hour

	payloadKeyAction       = "action"
	payloadKeyListingID    = "listing_id"
	payloadKeyAuditEntryID = "audit_entry_id"
	payloadKeyRequestID    = "request_id"
)

type notificationDispatcher struct {
	outboxRepo   repository.OutboxRepository
	publisher    service.EventPublisher
	throttle     service.NotificationThrottle
	metrics      *metrics.PipelineMetrics
	batchSize    int
	maxAttempts  int
	retryBackoff time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// NotificationDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type NotificationDispatcherParams struct {
	fx.In

	OutboxRepo repository.OutboxRepository
	Publisher  service.EventPublisher
	Throttle   service.NotificationThrottle
	Metrics    *metrics.PipelineMetrics `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewNotificationDispatcher creates the outbox-backed notification dispatcher.
func NewNotificationDispatcher(params NotificationDispatcherParams) usecase.NotificationDispatcher {
	outboxCfg := params.Config.Outbox

	return &notificationDispatcher{
		outboxRepo:   params.OutboxRepo,
		publisher:    params.Publisher,
		throttle:     params.Throttle,
		metrics:      params.Metrics,
		batchSize:    outboxCfg.BatchSize,
		maxAttempts:  outboxCfg.MaxAttempts,
		retryBackoff: outboxCfg.RetryBackoff,
		now:          utcNow,
		logger:       params.Logger,
	}
}

func (d *notificationDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Notify enqueues a pending event that is due immediately.
func (d *notificationDispatcher) Notify(ctx context.Context, outbox repository.OutboxRepository, msg *usecase.NotificationMessage) (*entity.NotificationEvent, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNotificationEnqueueFailed.WithDetails(err.Error()), "failed to generate notification id")
	}

	now := d.now()
	payload := maps.Clone(msg.Payload)
	if payload == nil {
		payload = map[string]any{}
	}
	if _, ok := payload[payloadKeyRequestID]; !ok {
		if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
			payload[payloadKeyRequestID] = requestID
		}
	}

	event := &entity.NotificationEvent{
		ID:            id,
		RecipientID:   msg.RecipientID,
		ListingID:     msg.ListingID,
		AuditEntryID:  msg.AuditEntryID,
		Kind:          msg.Kind,
		Title:         msg.Title,
		Body:          msg.Body,
		Payload:       payload,
		Status:        entity.NotificationStatusPending,
		NextAttemptAt: now,
		CreatedAt:     now,
	}

	if err := outbox.Enqueue(ctx, event); err != nil {
		d.log(ctx).Error("Failed to enqueue notification",
			slog.String("listing_id", msg.ListingID.String()),
			slog.String("kind", string(msg.Kind)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrNotificationEnqueueFailed.WithDetails(err.Error()), "failed to enqueue notification")
	}

	return event, nil
}

// DeliverPending publishes one batch of due events. Per-event failures are recorded on the
// event and do not stop the batch.
func (d *notificationDispatcher) DeliverPending(ctx context.Context) (*usecase.DeliveryReport, error) {
	events, err := d.outboxRepo.FetchDue(ctx, d.now(), d.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch due notifications")
	}

	report := &usecase.DeliveryReport{Fetched: len(events)}
	for _, event := range events {
		if ctx.Err() != nil {
			break
		}
		d.deliver(ctx, event, report)
	}

	if report.Fetched > 0 {
		d.log(ctx).Info("Notification relay run completed",
			slog.Int("fetched", report.Fetched),
			slog.Int("delivered", report.Delivered),
			slog.Int("deferred", report.Deferred),
			slog.Int("retried", report.Retried),
			slog.Int("dead", report.Dead),
		)
	}

	return report, nil
}

func (d *notificationDispatcher) deliver(ctx context.Context, event *entity.NotificationEvent, report *usecase.DeliveryReport) {
	logger := d.log(ctx).With(
		slog.String("event_id", event.ID.String()),
		slog.String("listing_id", event.ListingID.String()),
	)

	allowed, retryAfter, err := d.throttle.Allow(ctx, event.RecipientID)
	if err != nil {
		// The counter store being down must not stall delivery.
		logger.Warn("Notification throttle unavailable, sending anyway", slog.Any("error", err))
		allowed = true
	}
	if !allowed {
		if err := d.outboxRepo.Defer(ctx, event.ID, d.now().Add(retryAfter)); err != nil {
			logger.Error("Failed to defer throttled notification", slog.Any("error", err))

			return
		}
		report.Deferred++
		d.metrics.ObserveNotification(metrics.NotificationDeferred)

		return
	}

	if err := d.publisher.PublishNotificationEvent(ctx, toPublishedEvent(event)); err != nil {
		d.recordFailure(ctx, logger, event, err, report)

		return
	}

	if err := d.outboxRepo.MarkDelivered(ctx, event.ID, d.now()); err != nil {
		// The event stays pending and is published again; consumers de-duplicate on the id.
		logger.Error("Failed to mark notification delivered", slog.Any("error", err))

		return
	}
	report.Delivered++
	d.metrics.ObserveNotification(metrics.NotificationDelivered)
}

func (d *notificationDispatcher) recordFailure(ctx context.Context, logger *slog.Logger, event *entity.NotificationEvent, publishErr error, report *usecase.DeliveryReport) {
	attempts := event.Attempts + 1
	dead := attempts >= d.maxAttempts
	nextAttemptAt := d.now().Add(d.backoff(attempts))

	if err := d.outboxRepo.MarkRetry(ctx, event.ID, attempts, nextAttemptAt, publishErr.Error(), dead); err != nil {
		logger.Error("Failed to record notification failure", slog.Any("error", err))

		return
	}

	if dead {
		report.Dead++
		d.metrics.ObserveNotification(metrics.NotificationDead)
		logger.Error("Notification delivery abandoned",
			slog.Int("attempts", attempts),
			slog.Any("error", publishErr),
		)

		return
	}

	report.Retried++
	d.metrics.ObserveNotification(metrics.NotificationRetried)
	logger.Warn("Notification delivery failed, will retry",
		slog.Int("attempts", attempts),
		slog.Time("next_attempt_at", nextAttemptAt),
		slog.Any("error", publishErr),
	)
}

// backoff doubles the base delay per attempt up to maxRetryBackoff.
func (d *notificationDispatcher) backoff(attempts int) time.Duration {
	delay := d.retryBackoff
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryBackoff {
			return maxRetryBackoff
		}
	}

	return delay
}

func toPublishedEvent(event *entity.NotificationEvent) *service.NotificationEvent {
	data := make(map[string]string, len(event.Payload)+1)
	for key, value := range event.Payload {
		data[key] = stringifyPayloadValue(value)
	}
	data["event_id"] = event.ID.String()

	requestID, _ := event.Payload[payloadKeyRequestID].(string)

	return &service.NotificationEvent{
		RequestID:   requestID,
		EventID:     event.ID.String(),
		RecipientID: event.RecipientID.String(),
		ListingID:   event.ListingID.String(),
		Kind:        string(event.Kind),
		Title:       event.Title,
		Body:        event.Body,
		Data:        data,
		OccurredAt:  event.CreatedAt,
	}
}

func stringifyPayloadValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	}
}

// NotificationFor composes the owner notification of an accepted transition. The content
// depends only on the audit entry and the listing address.
func NotificationFor(listing *entity.Listing, entry *entity.AuditEntry) *usecase.NotificationMessage {
	kind, title, body := notificationContent(listing, entry)
	if notes, ok := entry.Details[entity.AuditDetailNotes].(string); ok && notes != "" {
		body += " Notes: " + notes
	}

	payload := maps.Clone(entry.Details)
	if payload == nil {
		payload = map[string]any{}
	}
	payload[payloadKeyAction] = string(entry.Action)
	payload[payloadKeyListingID] = listing.ID.String()
	payload[payloadKeyAuditEntryID] = entry.ID.String()
	if entry.RequestID != "" {
		payload[payloadKeyRequestID] = entry.RequestID
	}

	auditEntryID := entry.ID

	return &usecase.NotificationMessage{
		RecipientID:  listing.OwnerID,
		ListingID:    listing.ID,
		AuditEntryID: &auditEntryID,
		Kind:         kind,
		Title:        title,
		Body:         body,
		Payload:      payload,
	}
}

func notificationContent(listing *entity.Listing, entry *entity.AuditEntry) (entity.NotificationKind, string, string) {
	address := listing.Address
	detail := func(key string) string {
		v, _ := entry.Details[key].(string)

		return v
	}

	switch entry.Action {
	case entity.AuditActionListingSubmitted, entity.AuditActionDraftSubmitted:
		return entity.NotificationKindListingSubmitted, "Listing submitted",
			fmt.Sprintf("Your listing at %s was submitted and is awaiting document verification.", address)
	case entity.AuditActionDraftSaved:
		return entity.NotificationKindDraftSaved, "Draft saved",
			fmt.Sprintf("Your listing at %s was saved as a draft.", address)
	case entity.AuditActionMLVerdictRecorded:
		return entity.NotificationKindMLVerdict, "Document check completed", mlVerdictBody(address, detail)
	case entity.AuditActionVettingApproved:
		return entity.NotificationKindListingApproved, "Listing approved",
			fmt.Sprintf("Your listing at %s is now live.", address)
	case entity.AuditActionVettingRejected:
		return entity.NotificationKindListingRejected, "Listing rejected",
			fmt.Sprintf("Your listing at %s was rejected: %s.", address, detail("rejection_reason"))
	case entity.AuditActionVettingScheduled:
		return entity.NotificationKindVettingScheduled, "Vetting visit scheduled",
			fmt.Sprintf("An on-site visit for your listing at %s is scheduled for %s.", address, detail("scheduled_date"))
	case entity.AuditActionVettingIssueFlagged:
		return entity.NotificationKindVettingIssue, "Vetting issue reported",
			fmt.Sprintf("A vetting agent reported an issue with your listing at %s.", address)
	case entity.AuditActionDuplicateKeptBoth:
		return entity.NotificationKindDuplicateCleared, "Duplicate check cleared",
			fmt.Sprintf("Your listing at %s is no longer considered a duplicate.", address)
	case entity.AuditActionDuplicateKeptMaster:
		return entity.NotificationKindDuplicateRejected, "Listing rejected as a duplicate",
			fmt.Sprintf("Your listing at %s duplicates listing %s and was rejected.", address, detail("master_listing_id"))
	case entity.AuditActionDuplicateRejected:
		return entity.NotificationKindDuplicateRejected, "Listing rejected as a duplicate",
			fmt.Sprintf("Your listing at %s was rejected as a duplicate: %s.", address, detail("rejection_reason"))
	case entity.AuditActionDuplicateFlagged:
		return entity.NotificationKindDuplicateSuspected, "Possible duplicate listing",
			fmt.Sprintf("Your listing at %s is under review as a possible duplicate.", address)
	case entity.AuditActionListingUnlisted:
		return entity.NotificationKindListingUnlisted, "Listing unlisted",
			fmt.Sprintf("Your listing at %s was unlisted.", address)
	default:
		return entity.NotificationKind(entry.Action), "Listing updated",
			fmt.Sprintf("Your listing at %s moved from %s to %s.", address,
				detail(entity.AuditDetailPreviousStatus), detail(entity.AuditDetailNewStatus))
	}
}

func mlVerdictBody(address string, detail func(string) string) string {
	switch entity.ListingStatus(detail(entity.AuditDetailNewStatus)) {
	case entity.ListingStatusPendingVetting:
		return fmt.Sprintf("Your listing at %s passed document checks and is awaiting on-site vetting.", address)
	case entity.ListingStatusDuplicateCheck:
		return fmt.Sprintf("Your listing at %s passed document checks and is being reviewed as a possible duplicate.", address)
	}

	if entity.MLVerdict(detail("verdict")) == entity.MLVerdictReviewRequired {
		return fmt.Sprintf("Your listing at %s needs a manual document review.", address)
	}

	return fmt.Sprintf("Your listing at %s did not pass document checks.", address)
}
