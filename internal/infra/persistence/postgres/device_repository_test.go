package postgres

import (
	"context"
	"testing"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/repository"
	"proptrust/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(ownerID uuid.UUID, deviceID, token string) *entity.Device {
	return &entity.Device{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		DeviceID: deviceID,
		FCMToken: token,
		Platform: entity.PlatformAndroid,
	}
}

func TestDeviceRepository_UpsertRefreshesExistingDevice(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(testutil.NewSQLiteDB(t))
	ownerID := uuid.New()

	first, err := repo.UpsertDevice(ctx, newDevice(ownerID, "pixel-7", "tok-1"))
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := repo.UpsertDevice(ctx, &entity.Device{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		DeviceID: "pixel-7",
		FCMToken: "tok-2",
		Platform: entity.PlatformWeb,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "tok-2", second.FCMToken)
	assert.Equal(t, entity.PlatformWeb, second.Platform)

	active, err := repo.FindActiveDevicesByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, active, 1)
}

func TestDeviceRepository_UpsertRestoresDeletedDevice(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(testutil.NewSQLiteDB(t))
	ownerID := uuid.New()

	device, err := repo.UpsertDevice(ctx, newDevice(ownerID, "iphone", "tok-1"))
	require.NoError(t, err)
	require.NoError(t, repo.DeleteDevice(ctx, device.ID))

	_, err = repo.FindDeviceByID(ctx, device.ID)
	require.ErrorIs(t, err, repository.ErrDeviceNotFound)

	restored, err := repo.UpsertDevice(ctx, newDevice(ownerID, "iphone", "tok-9"))
	require.NoError(t, err)
	assert.Equal(t, device.ID, restored.ID)
	assert.Equal(t, "tok-9", restored.FCMToken)
}

func TestDeviceRepository_DeactivateByTokensKeepsOneDevice(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(testutil.NewSQLiteDB(t))
	oldOwner, newOwner := uuid.New(), uuid.New()

	_, err := repo.UpsertDevice(ctx, newDevice(oldOwner, "tablet", "shared-token"))
	require.NoError(t, err)
	kept, err := repo.UpsertDevice(ctx, newDevice(newOwner, "tablet", "shared-token"))
	require.NoError(t, err)

	require.NoError(t, repo.DeactivateByTokens(ctx, []string{"shared-token"}, kept.ID))

	oldActive, err := repo.FindActiveDevicesByOwner(ctx, oldOwner)
	require.NoError(t, err)
	assert.Empty(t, oldActive)

	newActive, err := repo.FindActiveDevicesByOwner(ctx, newOwner)
	require.NoError(t, err)
	require.Len(t, newActive, 1)
	assert.Equal(t, kept.ID, newActive[0].ID)

	require.NoError(t, repo.DeactivateByTokens(ctx, []string{"shared-token"}, uuid.Nil))
	newActive, err = repo.FindActiveDevicesByOwner(ctx, newOwner)
	require.NoError(t, err)
	assert.Empty(t, newActive)
}

func TestDeviceRepository_UpdateFCMTokenReactivates(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(testutil.NewSQLiteDB(t))
	ownerID := uuid.New()

	device, err := repo.UpsertDevice(ctx, newDevice(ownerID, "pixel", "stale"))
	require.NoError(t, err)
	require.NoError(t, repo.DeactivateByTokens(ctx, []string{"stale"}, uuid.Nil))

	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "fresh"))

	got, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "fresh", got.FCMToken)

	assert.ErrorIs(t, repo.UpdateFCMToken(ctx, uuid.New(), "x"), repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.DeleteDevice(ctx, uuid.New()), repository.ErrDeviceNotFound)
}
