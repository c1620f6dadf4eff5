package postgres

import (
	"context"
	"time"

	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/repository"
	"proptrust/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Enqueue inserts a pending notification event.
func (repo *outboxRepository) Enqueue(ctx context.Context, event *entity.NotificationEvent) error {
	eventM := fromNotificationDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue notification")
	}

	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FetchDue returns pending events whose next attempt time has passed.
func (repo *outboxRepository) FetchDue(ctx context.Context, now time.Time, limit int) ([]*entity.NotificationEvent, error) {
	var eventModels []*model.NotificationOutboxModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", string(entity.NotificationStatusPending), now).
		Order("next_attempt_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch due notifications")
	}

	return toNotificationDomains(eventModels), nil
}

// MarkDelivered records a successful delivery.
func (repo *outboxRepository) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationOutboxModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(entity.NotificationStatusDelivered),
			"delivered_at": deliveredAt,
			"last_error":   "",
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification delivered")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkRetry records a failed attempt.
func (repo *outboxRepository) MarkRetry(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string, dead bool) error {
	status := entity.NotificationStatusPending
	if dead {
		status = entity.NotificationStatusDead
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationOutboxModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          string(status),
			"attempts":        attempts,
			"next_attempt_at": nextAttemptAt,
			"last_error":      lastError,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification for retry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// Defer postpones an event without counting an attempt.
func (repo *outboxRepository) Defer(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationOutboxModel{}).
		Where("id = ?", id).
		Update("next_attempt_at", nextAttemptAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to defer notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// ListByListing returns the events of a listing, oldest first.
func (repo *outboxRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.NotificationEvent, error) {
	var eventModels []*model.NotificationOutboxModel

	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return toNotificationDomains(eventModels), nil
}

// --- Mapper Functions ---

func toNotificationDomains(eventModels []*model.NotificationOutboxModel) []*entity.NotificationEvent {
	events := make([]*entity.NotificationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toNotificationDomain(eventM))
	}

	return events
}

func toNotificationDomain(data *model.NotificationOutboxModel) *entity.NotificationEvent {
	if data == nil {
		return nil
	}

	payload := map[string]any(data.Payload)
	if payload == nil {
		payload = map[string]any{}
	}

	return &entity.NotificationEvent{
		ID:            data.ID,
		RecipientID:   data.RecipientID,
		ListingID:     data.ListingID,
		AuditEntryID:  data.AuditEntryID,
		Kind:          entity.NotificationKind(data.Kind),
		Title:         data.Title,
		Body:          data.Body,
		Payload:       payload,
		Status:        entity.NotificationStatus(data.Status),
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		LastError:     data.LastError,
		CreatedAt:     data.CreatedAt,
		DeliveredAt:   data.DeliveredAt,
	}
}

func fromNotificationDomain(data *entity.NotificationEvent) *model.NotificationOutboxModel {
	if data == nil {
		return nil
	}

	payload := datatypes.JSONMap(data.Payload)
	if payload == nil {
		payload = datatypes.JSONMap{}
	}

	return &model.NotificationOutboxModel{
		ID:            data.ID,
		RecipientID:   data.RecipientID,
		ListingID:     data.ListingID,
		AuditEntryID:  data.AuditEntryID,
		Kind:          string(data.Kind),
		Title:         data.Title,
		Body:          data.Body,
		Payload:       payload,
		Status:        string(data.Status),
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		LastError:     data.LastError,
		CreatedAt:     data.CreatedAt,
		DeliveredAt:   data.DeliveredAt,
	}
}
