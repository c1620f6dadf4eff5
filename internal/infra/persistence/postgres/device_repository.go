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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.Device) (*entity.Device, error) {
	deviceM := fromDeviceDomain(device)
	deviceM.IsActive = true

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}, {Name: "device_id"}},
			// deleted_at is NULL in the inserted row, so a removed device comes back.
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at", "deleted_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	var stored model.DeviceModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND device_id = ?", device.OwnerID, device.DeviceID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload device")
	}

	return toDeviceDomain(&stored), nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) FindActiveDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token":  fcmToken,
			"is_active":  true,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string, keepID uuid.UUID) error {
	if len(tokens) == 0 {
		return nil
	}

	query := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", tokens, true)
	if keepID != uuid.Nil {
		query = query.Where("id <> ?", keepID)
	}

	if err := query.Updates(map[string]any{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices")
	}

	return nil
}

// DeleteDevice soft-deletes the device; re-registering the same client device id restores it.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	return &entity.Device{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  string(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
