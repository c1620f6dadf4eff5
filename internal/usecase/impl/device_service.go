package impl

import (
	"context"
	"strings"

	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/repository"
	"proptrust/internal/errors"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	platform, ok := entity.ParsePlatform(input.Platform)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be one of ios, android, web")
	}

	token := strings.TrimSpace(input.FCMToken)
	deviceID := strings.TrimSpace(input.DeviceID)
	if token == "" || deviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device_id and fcm_token are required")
	}

	device, err := s.deviceRepo.UpsertDevice(ctx, &entity.Device{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		DeviceID: deviceID,
		FCMToken: token,
		Platform: platform,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	// A token belongs to one installation; stale holders would get this owner's notifications.
	if err := s.deviceRepo.DeactivateByTokens(ctx, []string{token}, device.ID); err != nil {
		return nil, errors.Wrap(err, "failed to release token from other devices")
	}

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, ownerID, deviceID uuid.UUID, fcmToken string) error {
	token := strings.TrimSpace(fcmToken)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	if _, err := s.findOwnedDevice(ctx, ownerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, token); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	if err := s.deviceRepo.DeactivateByTokens(ctx, []string{token}, deviceID); err != nil {
		return errors.Wrap(err, "failed to release token from other devices")
	}

	return nil
}

func (s *deviceService) GetOwnerDevices(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by owner")
	}

	return devices, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, ownerID, deviceID uuid.UUID) error {
	if _, err := s.findOwnedDevice(ctx, ownerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) findOwnedDevice(ctx context.Context, ownerID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.OwnerID != ownerID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}
