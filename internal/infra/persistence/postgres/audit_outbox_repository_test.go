package postgres

import (
	"context"
	"testing"
	"time"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/repository"
	"proptrust/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_AppendAndListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditRepository(testutil.NewSQLiteDB(t))

	target := uuid.New()
	base := time.Now().UTC().Truncate(time.Second)
	actions := []entity.AuditAction{
		entity.AuditActionListingSubmitted,
		entity.AuditActionMLVerdictRecorded,
		entity.AuditActionVettingApproved,
	}
	// Inserted out of order; the same timestamp on the last two exercises the id tie-break.
	times := []time.Time{base, base.Add(time.Second), base.Add(time.Second)}
	order := []int{2, 0, 1}

	ids := make([]uuid.UUID, len(actions))
	for i := range actions {
		id, err := uuid.NewV7()
		require.NoError(t, err)
		ids[i] = id
	}
	for _, i := range order {
		require.NoError(t, repo.Append(ctx, &entity.AuditEntry{
			ID:        ids[i],
			ActorID:   uuid.New(),
			Action:    actions[i],
			TargetID:  target,
			Details:   map[string]any{entity.AuditDetailNotes: "step"},
			CreatedAt: times[i],
		}))
	}
	require.NoError(t, repo.Append(ctx, &entity.AuditEntry{
		ID:        uuid.New(),
		ActorID:   uuid.New(),
		Action:    entity.AuditActionListingSubmitted,
		TargetID:  uuid.New(),
		Details:   map[string]any{},
		CreatedAt: base,
	}))

	entries, err := repo.ListByTarget(ctx, target)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, actions[i], entry.Action)
		assert.Equal(t, "step", entry.Details[entity.AuditDetailNotes])
	}
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewOutboxRepository(testutil.NewSQLiteDB(t))

	now := time.Now().UTC().Truncate(time.Millisecond)
	listingID := uuid.New()
	due := &entity.NotificationEvent{
		ID:            uuid.New(),
		RecipientID:   uuid.New(),
		ListingID:     listingID,
		Kind:          entity.NotificationKindListingApproved,
		Title:         "Your listing is live",
		Body:          "body",
		Payload:       map[string]any{"new_status": "live"},
		Status:        entity.NotificationStatusPending,
		NextAttemptAt: now.Add(-time.Second),
		CreatedAt:     now,
	}
	later := &entity.NotificationEvent{
		ID:            uuid.New(),
		RecipientID:   uuid.New(),
		ListingID:     listingID,
		Kind:          entity.NotificationKindMLVerdict,
		Title:         "t",
		Body:          "b",
		Status:        entity.NotificationStatusPending,
		NextAttemptAt: now.Add(time.Hour),
		CreatedAt:     now,
	}
	require.NoError(t, repo.Enqueue(ctx, due))
	require.NoError(t, repo.Enqueue(ctx, later))

	events, err := repo.FetchDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, due.ID, events[0].ID)
	assert.Equal(t, "live", events[0].Payload["new_status"])

	require.NoError(t, repo.MarkRetry(ctx, due.ID, 1, now.Add(time.Minute), "publish failed", false))
	events, err = repo.FetchDue(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, events)

	events, err = repo.FetchDue(ctx, now.Add(2*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].Attempts)
	assert.Equal(t, "publish failed", events[0].LastError)

	require.NoError(t, repo.MarkDelivered(ctx, due.ID, now))
	require.NoError(t, repo.MarkRetry(ctx, later.ID, 5, now, "gave up", true))

	events, err = repo.FetchDue(ctx, now.Add(2*time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, events)

	all, err := repo.ListByListing(ctx, listingID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	statuses := []entity.NotificationStatus{all[0].Status, all[1].Status}
	assert.ElementsMatch(t, []entity.NotificationStatus{entity.NotificationStatusDelivered, entity.NotificationStatusDead}, statuses)

	assert.ErrorIs(t, repo.MarkDelivered(ctx, uuid.New(), now), repository.ErrNotificationNotFound)
}
