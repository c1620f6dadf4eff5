package usecase

import (
	"context"

	"proptrust/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput describes the installation an owner registers for push notifications.
type RegisterDeviceInput struct {
	DeviceID string
	FCMToken string
	Platform string
}

// DeviceUsecase manages where an owner's pipeline notifications are pushed.
type DeviceUsecase interface {
	// RegisterDevice stores the installation, or refreshes it when the owner registered the same
	// device id before. The token is taken away from any other device that still holds it.
	RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *RegisterDeviceInput) (*entity.Device, error)

	UpdateFCMToken(ctx context.Context, ownerID, deviceID uuid.UUID, fcmToken string) error

	GetOwnerDevices(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// DeactivateDevice removes a device; another owner's device is reported as not found.
	DeactivateDevice(ctx context.Context, ownerID, deviceID uuid.UUID) error
}
