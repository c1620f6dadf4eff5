package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/repository"
	"proptrust/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditEntryFor(listing *entity.Listing) *entity.AuditEntry {
	return &entity.AuditEntry{
		ID:        uuid.New(),
		ActorID:   listing.OwnerID,
		Action:    entity.AuditActionListingSubmitted,
		TargetID:  listing.ID,
		Details:   map[string]any{},
		CreatedAt: time.Now().UTC(),
	}
}

func TestTransactionManager_CommitsAllWrites(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	listing := newTestListing(uuid.New(), "7 Ozumba Mbadiwe", entity.ListingStatusPendingMLValidation)

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewListingRepository().Create(ctx, listing); err != nil {
			return err
		}

		return f.NewAuditRepository().Append(ctx, auditEntryFor(listing))
	})
	require.NoError(t, err)

	_, err = NewListingRepository(db).FindByID(ctx, listing.ID)
	require.NoError(t, err)
	entries, err := NewAuditRepository(db).ListByTarget(ctx, listing.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	listing := newTestListing(uuid.New(), "8 Ozumba Mbadiwe", entity.ListingStatusPendingMLValidation)
	errAudit := errors.New("audit rejected")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewListingRepository().Create(ctx, listing); err != nil {
			return err
		}

		return errAudit
	})
	require.ErrorIs(t, err, errAudit)
	assert.Equal(t, errAudit, err)

	_, err = NewListingRepository(db).FindByID(ctx, listing.ID)
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	listing := newTestListing(uuid.New(), "9 Ozumba Mbadiwe", entity.ListingStatusPendingMLValidation)

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			require.NoError(t, f.NewListingRepository().Create(ctx, listing))
			panic("boom")
		})
	})

	_, err := NewListingRepository(db).FindByID(ctx, listing.ID)
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}
