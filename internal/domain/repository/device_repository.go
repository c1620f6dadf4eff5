package repository

import (
	"context"

	"proptrust/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device does not exist or was removed.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push devices of listing owners.
type DeviceRepository interface {
	// UpsertDevice stores the device keyed by (OwnerID, DeviceID). An existing row, including a
	// removed one, gets the new token and platform and becomes active again. The stored row is
	// returned.
	UpsertDevice(ctx context.Context, device *entity.Device) (*entity.Device, error)

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindActiveDevicesByOwner returns the devices that should receive the owner's notifications.
	FindActiveDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// UpdateFCMToken replaces a device token and reactivates the device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks devices holding any of the tokens inactive, except the device
	// with keepID when it is not uuid.Nil.
	DeactivateByTokens(ctx context.Context, tokens []string, keepID uuid.UUID) error

	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
