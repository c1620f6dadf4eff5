package postgres

import (
	"context"

	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/repository"
	"proptrust/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// Append inserts a new audit entry.
func (repo *auditRepository) Append(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := fromAuditDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListByTarget returns the trail of a listing, oldest first. Entry ids are time-ordered
// UUIDv7 values and break ties between equal timestamps.
func (repo *auditRepository) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*entity.AuditEntry, error) {
	var entryModels []*model.AuditEntryModel

	if err := repo.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	entries := make([]*entity.AuditEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toAuditDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toAuditDomain(data *model.AuditEntryModel) *entity.AuditEntry {
	if data == nil {
		return nil
	}

	details := map[string]any(data.Details)
	if details == nil {
		details = map[string]any{}
	}

	return &entity.AuditEntry{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    entity.AuditAction(data.Action),
		TargetID:  data.TargetID,
		Details:   details,
		RequestID: data.RequestID,
		CreatedAt: data.CreatedAt,
	}
}

func fromAuditDomain(data *entity.AuditEntry) *model.AuditEntryModel {
	if data == nil {
		return nil
	}

	details := datatypes.JSONMap(data.Details)
	if details == nil {
		details = datatypes.JSONMap{}
	}

	return &model.AuditEntryModel{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    string(data.Action),
		TargetID:  data.TargetID,
		Details:   details,
		RequestID: data.RequestID,
		CreatedAt: data.CreatedAt,
	}
}
