package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"proptrust/config"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/repository"
	"proptrust/internal/domain/verification"
	"proptrust/internal/infra/authz"
	"proptrust/internal/infra/metrics"
	"proptrust/internal/infra/persistence/postgres"
	mockSvc "proptrust/internal/mocks/service"
	"proptrust/internal/testutil"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listingServiceFixtures wires the coordinator to real repositories on an in-memory database.
type listingServiceFixtures struct {
	service  usecase.ListingUsecase
	listings repository.ListingRepository
	audits   repository.AuditRepository
	outbox   repository.OutboxRepository
	cfg      *config.Config
}

func createTestListingService(t *testing.T, configure ...func(*config.Config)) listingServiceFixtures {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	for _, fn := range configure {
		fn(cfg)
	}

	logger := slog.New(slog.DiscardHandler)
	authorizer, err := authz.NewAuthorizer(logger)
	require.NoError(t, err)

	listingRepo := postgres.NewListingRepository(db)
	auditRepo := postgres.NewAuditRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	service := NewListingService(ListingServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		ListingRepo: listingRepo,
		AuditLog:    NewAuditLog(AuditLogParams{AuditRepo: auditRepo, Logger: logger}),
		Matcher:     NewDuplicateMatcher(),
		Dispatcher: NewNotificationDispatcher(NotificationDispatcherParams{
			OutboxRepo: outboxRepo,
			Publisher:  mockSvc.NewMockEventPublisher(t),
			Throttle:   mockSvc.NewMockNotificationThrottle(t),
			Config:     cfg,
			Logger:     logger,
		}),
		Authorizer: authorizer,
		Metrics:    metrics.NewPipelineMetrics(prometheus.NewRegistry(), cfg),
		Config:     cfg,
		Logger:     logger,
	})

	return listingServiceFixtures{
		service:  service,
		listings: listingRepo,
		audits:   auditRepo,
		outbox:   outboxRepo,
		cfg:      cfg,
	}
}

func newActor(roles ...entity.Role) entity.Actor {
	return entity.Actor{ID: uuid.New(), Roles: roles}
}

func floatPtr(v float64) *float64 {
	return &v
}

// seedListing stores a listing directly, bypassing the pipeline.
func seedListing(t *testing.T, repo repository.ListingRepository, ownerID uuid.UUID, address string, status entity.ListingStatus) *entity.Listing {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	listing := &entity.Listing{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Title:             "Listing at " + address,
		Address:           address,
		NormalizedAddress: entity.NormalizeAddress(address),
		Status:            status,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, repo.Create(context.Background(), listing))

	return listing
}

func seedListingAt(t *testing.T, repo repository.ListingRepository, ownerID uuid.UUID, address string, status entity.ListingStatus, lat, lon float64) *entity.Listing {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	listing := &entity.Listing{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Title:             "Listing at " + address,
		Address:           address,
		NormalizedAddress: entity.NormalizeAddress(address),
		Latitude:          &lat,
		Longitude:         &lon,
		Status:            status,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, repo.Create(context.Background(), listing))

	return listing
}

func seedSuspectedDuplicate(t *testing.T, repo repository.ListingRepository, ownerID uuid.UUID, address string) *entity.Listing {
	t.Helper()

	listing := seedListing(t, repo, ownerID, address, entity.ListingStatusDuplicateCheck)
	flagged := listing.Clone()
	flagged.IsDuplicate = true
	flagged.Version = 2
	require.NoError(t, repo.UpdateIfUnchanged(context.Background(), flagged, listing.Status, listing.Version))

	return flagged
}

func assertKind(t *testing.T, err error, kind domainerrors.Kind) {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, kind, domainerrors.KindOf(err), "unexpected error: %v", err)
}

func (fx listingServiceFixtures) auditTrail(t *testing.T, listingID uuid.UUID) []*entity.AuditEntry {
	t.Helper()

	entries, err := fx.audits.ListByTarget(context.Background(), listingID)
	require.NoError(t, err)

	return entries
}

func (fx listingServiceFixtures) notifications(t *testing.T, listingID uuid.UUID) []*entity.NotificationEvent {
	t.Helper()

	events, err := fx.outbox.ListByListing(context.Background(), listingID)
	require.NoError(t, err)

	return events
}

func TestListingService_SubmitListing(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	result, err := fx.service.SubmitListing(ctx, owner, &usecase.ListingDraft{
		Title:     "Three bedroom flat",
		Price:     floatPtr(250000),
		Address:   "  12 Admiralty Way, Lekki ",
		Latitude:  floatPtr(6.4281),
		Longitude: floatPtr(3.4219),
	})
	require.NoError(t, err)

	listing := result.Listing
	assert.Equal(t, entity.ListingStatusPendingMLValidation, listing.Status)
	assert.Equal(t, owner.ID, listing.OwnerID)
	assert.Equal(t, "12 Admiralty Way, Lekki", listing.Address)
	assert.Equal(t, "12 admiralty way lekki", listing.NormalizedAddress)
	assert.False(t, listing.IsDuplicate)
	assert.Equal(t, int64(1), listing.Version)
	assert.Equal(t, "Listing submitted for document verification", result.Message)

	stored, err := fx.listings.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPendingMLValidation, stored.Status)

	entries := fx.auditTrail(t, listing.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AuditActionListingSubmitted, entries[0].Action)
	assert.Equal(t, owner.ID, entries[0].ActorID)
	assert.Equal(t, "", entries[0].Details[entity.AuditDetailPreviousStatus])
	assert.Equal(t, "pending_ml_validation", entries[0].Details[entity.AuditDetailNewStatus])

	events := fx.notifications(t, listing.ID)
	require.Len(t, events, 1)
	assert.Equal(t, entity.NotificationKindListingSubmitted, events[0].Kind)
	assert.Equal(t, owner.ID, events[0].RecipientID)
	require.NotNil(t, events[0].AuditEntryID)
	assert.Equal(t, entries[0].ID, *events[0].AuditEntryID)
}

func TestListingService_SubmitListing_FlagsDuplicate(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	existing := seedListing(t, fx.listings, uuid.New(), "12 Admiralty Way, Lekki", entity.ListingStatusLive)

	result, err := fx.service.SubmitListing(ctx, newActor(entity.RoleOwner), &usecase.ListingDraft{
		Address: "12 admiralty way lekki.",
	})
	require.NoError(t, err)
	assert.True(t, result.Listing.IsDuplicate)
	assert.Equal(t, entity.ListingStatusPendingMLValidation, result.Listing.Status)
	assert.Contains(t, result.Message, "possible duplicate")

	entries := fx.auditTrail(t, result.Listing.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, []any{existing.ID.String()}, entries[0].Details["duplicate_candidates"])
}

func TestListingService_SubmitListing_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		actor entity.Actor
		draft *usecase.ListingDraft
		kind  domainerrors.Kind
	}{
		{
			name:  "vetting agent cannot submit",
			actor: newActor(entity.RoleVettingAgent),
			draft: &usecase.ListingDraft{Address: "1 Marina Road"},
			kind:  domainerrors.KindForbidden,
		},
		{
			name:  "missing address",
			actor: newActor(entity.RoleOwner),
			draft: &usecase.ListingDraft{Address: "   "},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "latitude without longitude",
			actor: newActor(entity.RoleOwner),
			draft: &usecase.ListingDraft{Address: "1 Marina Road", Latitude: floatPtr(6.45)},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "latitude out of range",
			actor: newActor(entity.RoleOwner),
			draft: &usecase.ListingDraft{Address: "1 Marina Road", Latitude: floatPtr(91), Longitude: floatPtr(3.4)},
			kind:  domainerrors.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)

			result, err := fx.service.SubmitListing(context.Background(), tt.actor, tt.draft)
			assert.Nil(t, result)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestListingService_DraftThenSubmit(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	drafted, err := fx.service.SubmitListing(ctx, owner, &usecase.ListingDraft{
		Address:     "7 Bourdillon Road, Ikoyi",
		SaveAsDraft: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusDraft, drafted.Listing.Status)

	_, err = fx.service.SubmitDraft(ctx, newActor(entity.RoleOwner), drafted.Listing.ID)
	assertKind(t, err, domainerrors.KindForbidden)

	submitted, err := fx.service.SubmitDraft(ctx, owner, drafted.Listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPendingMLValidation, submitted.Listing.Status)
	assert.Equal(t, int64(2), submitted.Listing.Version)

	_, err = fx.service.SubmitDraft(ctx, owner, drafted.Listing.ID)
	assertKind(t, err, domainerrors.KindPreconditionFailed)

	entries := fx.auditTrail(t, drafted.Listing.ID)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.AuditActionDraftSaved, entries[0].Action)
	assert.Equal(t, entity.AuditActionDraftSubmitted, entries[1].Action)
	assert.Len(t, fx.notifications(t, drafted.Listing.ID), 2)
}

func TestListingService_RecordMLVerdict(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	analyzer := newActor(entity.RoleMLAnalyzer)

	clean := seedListing(t, fx.listings, uuid.New(), "3 Awolowo Road", entity.ListingStatusPendingMLValidation)
	result, err := fx.service.RecordMLVerdict(ctx, analyzer, &usecase.MLVerdictInput{
		ListingID:       clean.ID,
		Verdict:         entity.MLVerdictPassed,
		ConfidenceScore: floatPtr(0.97),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPendingVetting, result.Listing.Status)
	assert.Equal(t, entity.MLVerdictPassed, result.Listing.MLVerdict)

	review := seedListing(t, fx.listings, uuid.New(), "4 Awolowo Road", entity.ListingStatusPendingMLValidation)
	result, err = fx.service.RecordMLVerdict(ctx, analyzer, &usecase.MLVerdictInput{
		ListingID:     review.ID,
		Verdict:       entity.MLVerdictReviewRequired,
		FlaggedIssues: []string{"signature_mismatch"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPendingMLValidation, result.Listing.Status)
	assert.True(t, result.Listing.FlaggedForReview)

	_, err = fx.service.RecordMLVerdict(ctx, newActor(entity.RoleVettingAgent), &usecase.MLVerdictInput{
		ListingID: review.ID,
		Verdict:   entity.MLVerdictPassed,
	})
	assertKind(t, err, domainerrors.KindForbidden)

	_, err = fx.service.RecordMLVerdict(ctx, analyzer, &usecase.MLVerdictInput{
		ListingID: review.ID,
		Verdict:   "maybe",
	})
	assertKind(t, err, domainerrors.KindInvalidInput)
}

func TestListingService_RecordMLVerdict_PreconditionLeavesNoTrace(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	listing := seedListing(t, fx.listings, uuid.New(), "9 Glover Road", entity.ListingStatusPendingVetting)

	result, err := fx.service.RecordMLVerdict(ctx, newActor(entity.RoleMLAnalyzer), &usecase.MLVerdictInput{
		ListingID: listing.ID,
		Verdict:   entity.MLVerdictPassed,
	})
	assert.Nil(t, result)
	assertKind(t, err, domainerrors.KindPreconditionFailed)

	stored, err := fx.listings.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPendingVetting, stored.Status)
	assert.Equal(t, listing.Version, stored.Version)
	assert.Empty(t, fx.auditTrail(t, listing.ID))
	assert.Empty(t, fx.notifications(t, listing.ID))
}

func TestListingService_RecordVettingDecision_Approve(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	agent := newActor(entity.RoleVettingAgent)

	listing := seedListing(t, fx.listings, ownerID, "21 Kingsway Road", entity.ListingStatusPendingVetting)

	result, err := fx.service.RecordVettingDecision(ctx, agent, &usecase.VettingDecisionInput{
		ListingID: listing.ID,
		Action:    verification.VettingApprove,
		Notes:     "deed verified on site",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusLive, result.Listing.Status)
	assert.NotNil(t, result.Listing.VerifiedAt)
	assert.Equal(t, "Listing approved and published", result.Message)

	entries := fx.auditTrail(t, listing.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AuditActionVettingApproved, entries[0].Action)
	assert.Equal(t, agent.ID, entries[0].ActorID)
	assert.Equal(t, "deed verified on site", entries[0].Details[entity.AuditDetailNotes])

	events := fx.notifications(t, listing.ID)
	require.Len(t, events, 1)
	assert.Equal(t, entity.NotificationKindListingApproved, events[0].Kind)
	assert.Equal(t, ownerID, events[0].RecipientID)
	assert.Equal(t, entity.NotificationStatusPending, events[0].Status)
}

func TestListingService_StatusPreservingDecisionsAreRecorded(t *testing.T) {
	scheduled := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     entity.ListingStatus
		apply      func(fx listingServiceFixtures, listingID uuid.UUID) (*usecase.PipelineResult, error)
		wantAction entity.AuditAction
		wantKind   entity.NotificationKind
		wantFlag   bool
	}{
		{
			name:   "ml verdict failed",
			status: entity.ListingStatusPendingMLValidation,
			apply: func(fx listingServiceFixtures, listingID uuid.UUID) (*usecase.PipelineResult, error) {
				return fx.service.RecordMLVerdict(context.Background(), newActor(entity.RoleMLAnalyzer), &usecase.MLVerdictInput{
					ListingID:     listingID,
					Verdict:       entity.MLVerdictFailed,
					FlaggedIssues: []string{"blurred_deed"},
				})
			},
			wantAction: entity.AuditActionMLVerdictRecorded,
			wantKind:   entity.NotificationKindMLVerdict,
		},
		{
			name:   "ml verdict needs review",
			status: entity.ListingStatusPendingMLValidation,
			apply: func(fx listingServiceFixtures, listingID uuid.UUID) (*usecase.PipelineResult, error) {
				return fx.service.RecordMLVerdict(context.Background(), newActor(entity.RoleMLAnalyzer), &usecase.MLVerdictInput{
					ListingID: listingID,
					Verdict:   entity.MLVerdictReviewRequired,
				})
			},
			wantAction: entity.AuditActionMLVerdictRecorded,
			wantKind:   entity.NotificationKindMLVerdict,
			wantFlag:   true,
		},
		{
			name:   "vetting visit scheduled",
			status: entity.ListingStatusPendingVetting,
			apply: func(fx listingServiceFixtures, listingID uuid.UUID) (*usecase.PipelineResult, error) {
				return fx.service.RecordVettingDecision(context.Background(), newActor(entity.RoleVettingAgent), &usecase.VettingDecisionInput{
					ListingID:     listingID,
					Action:        verification.VettingSchedule,
					ScheduledDate: &scheduled,
				})
			},
			wantAction: entity.AuditActionVettingScheduled,
			wantKind:   entity.NotificationKindVettingScheduled,
		},
		{
			name:   "vetting issue flagged",
			status: entity.ListingStatusPendingVetting,
			apply: func(fx listingServiceFixtures, listingID uuid.UUID) (*usecase.PipelineResult, error) {
				return fx.service.RecordVettingDecision(context.Background(), newActor(entity.RoleVettingAgent), &usecase.VettingDecisionInput{
					ListingID: listingID,
					Action:    verification.VettingFlagIssue,
					Notes:     "boundary fence missing",
				})
			},
			wantAction: entity.AuditActionVettingIssueFlagged,
			wantKind:   entity.NotificationKindVettingIssue,
			wantFlag:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)
			ownerID := uuid.New()
			listing := seedListing(t, fx.listings, ownerID, "14 Awolowo Road", tt.status)

			result, err := tt.apply(fx, listing.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Listing.Status)
			assert.Equal(t, tt.wantFlag, result.Listing.FlaggedForReview)

			stored, err := fx.listings.FindByID(context.Background(), listing.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.status, stored.Status)
			assert.Equal(t, listing.Version+1, stored.Version)

			entries := fx.auditTrail(t, listing.ID)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantAction, entries[0].Action)
			assert.Equal(t, string(tt.status), entries[0].Details[entity.AuditDetailPreviousStatus])
			assert.Equal(t, string(tt.status), entries[0].Details[entity.AuditDetailNewStatus])

			events := fx.notifications(t, listing.ID)
			require.Len(t, events, 1)
			assert.Equal(t, tt.wantKind, events[0].Kind)
			assert.Equal(t, ownerID, events[0].RecipientID)
			require.NotNil(t, events[0].AuditEntryID)
			assert.Equal(t, entries[0].ID, *events[0].AuditEntryID)
		})
	}
}

func TestListingService_RecordVettingDecision_Rejections(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	listing := seedListing(t, fx.listings, uuid.New(), "5 Ozumba Mbadiwe", entity.ListingStatusPendingVetting)

	_, err := fx.service.RecordVettingDecision(ctx, newActor(entity.RoleOwner), &usecase.VettingDecisionInput{
		ListingID: listing.ID,
		Action:    verification.VettingApprove,
	})
	assertKind(t, err, domainerrors.KindForbidden)

	_, err = fx.service.RecordVettingDecision(ctx, newActor(entity.RoleVettingAgent), &usecase.VettingDecisionInput{
		ListingID: listing.ID,
		Action:    verification.VettingReject,
	})
	assertKind(t, err, domainerrors.KindInvalidInput)

	_, err = fx.service.RecordVettingDecision(ctx, newActor(entity.RoleAdmin), &usecase.VettingDecisionInput{
		ListingID: uuid.New(),
		Action:    verification.VettingApprove,
	})
	assertKind(t, err, domainerrors.KindNotFound)

	assert.Empty(t, fx.auditTrail(t, listing.ID))
}

func TestListingService_OperationTimeout(t *testing.T) {
	fx := createTestListingService(t, func(cfg *config.Config) {
		cfg.Pipeline.OperationTimeout = time.Nanosecond
	})
	listing := seedListing(t, fx.listings, uuid.New(), "2 Adeola Odeku", entity.ListingStatusPendingVetting)

	_, err := fx.service.RecordVettingDecision(context.Background(), newActor(entity.RoleVettingAgent), &usecase.VettingDecisionInput{
		ListingID: listing.ID,
		Action:    verification.VettingApprove,
	})
	assertKind(t, err, domainerrors.KindTimeout)

	stored, err := fx.listings.FindByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPendingVetting, stored.Status)
}

func TestListingService_ResolveDuplicate_ConcurrentCallsHaveOneWinner(t *testing.T) {
	fx := createTestListingService(t)
	listing := seedSuspectedDuplicate(t, fx.listings, uuid.New(), "10 Bishop Aboyade Cole")

	const callers = 2
	admin := newActor(entity.RoleAdmin)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = fx.service.ResolveDuplicate(context.Background(), admin, &usecase.DuplicateResolutionInput{
				ListingID:       listing.ID,
				Action:          verification.ResolutionRejectDuplicate,
				RejectionReason: "same unit listed twice",
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assertKind(t, err, domainerrors.KindPreconditionFailed)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, fx.auditTrail(t, listing.ID), 1)
	assert.Len(t, fx.notifications(t, listing.ID), 1)

	stored, err := fx.listings.FindByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusRejected, stored.Status)
	assert.True(t, stored.IsDuplicate)
}

func TestListingService_ResolveDuplicate_KeepMaster(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	admin := newActor(entity.RoleAdmin)

	l5 := seedSuspectedDuplicate(t, fx.listings, ownerID, "14 Saka Tinubu Street")
	l7 := seedListing(t, fx.listings, uuid.New(), "14 Saka Tinubu Street, Victoria Island", entity.ListingStatusLive)

	_, err := fx.service.ResolveDuplicate(ctx, admin, &usecase.DuplicateResolutionInput{
		ListingID:       l5.ID,
		Action:          verification.ResolutionKeepMaster,
		MasterListingID: &l5.ID,
	})
	assertKind(t, err, domainerrors.KindInvalidInput)

	missing := uuid.New()
	_, err = fx.service.ResolveDuplicate(ctx, admin, &usecase.DuplicateResolutionInput{
		ListingID:       l5.ID,
		Action:          verification.ResolutionKeepMaster,
		MasterListingID: &missing,
	})
	assertKind(t, err, domainerrors.KindNotFound)
	assert.ErrorIs(t, err, domainerrors.ErrMasterListingNotFound)

	_, err = fx.service.ResolveDuplicate(ctx, newActor(entity.RoleVettingAgent), &usecase.DuplicateResolutionInput{
		ListingID:       l5.ID,
		Action:          verification.ResolutionKeepMaster,
		MasterListingID: &l7.ID,
	})
	assertKind(t, err, domainerrors.KindForbidden)

	result, err := fx.service.ResolveDuplicate(ctx, admin, &usecase.DuplicateResolutionInput{
		ListingID:       l5.ID,
		Action:          verification.ResolutionKeepMaster,
		MasterListingID: &l7.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusRejected, result.Listing.Status)
	assert.Contains(t, result.Listing.RejectionReason, l7.ID.String())

	events := fx.notifications(t, l5.ID)
	require.Len(t, events, 1)
	assert.Equal(t, ownerID, events[0].RecipientID)
	assert.Equal(t, "Listing rejected as a duplicate", events[0].Title)
	assert.Equal(t, entity.NotificationKindDuplicateRejected, events[0].Kind)
	assert.Equal(t, l7.ID.String(), events[0].Payload["master_listing_id"])
}

func TestListingService_ResolveDuplicate_KeepBoth(t *testing.T) {
	fx := createTestListingService(t)
	listing := seedSuspectedDuplicate(t, fx.listings, uuid.New(), "30 Isaac John Street")

	result, err := fx.service.ResolveDuplicate(context.Background(), newActor(entity.RoleAdmin), &usecase.DuplicateResolutionInput{
		ListingID: listing.ID,
		Action:    verification.ResolutionKeepBoth,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPendingVetting, result.Listing.Status)
	assert.False(t, result.Listing.IsDuplicate)
}

func TestListingService_FlagDuplicate(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	listing := seedListing(t, fx.listings, uuid.New(), "8 Ahmadu Bello Way", entity.ListingStatusPendingVetting)

	_, err := fx.service.FlagDuplicate(ctx, newActor(entity.RoleVettingAgent), listing.ID, "")
	assertKind(t, err, domainerrors.KindForbidden)

	result, err := fx.service.FlagDuplicate(ctx, newActor(entity.RoleAdmin), listing.ID, "reported by a buyer")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusDuplicateCheck, result.Listing.Status)
	assert.True(t, result.Listing.IsDuplicate)

	_, err = fx.service.FlagDuplicate(ctx, newActor(entity.RoleAdmin), listing.ID, "")
	assertKind(t, err, domainerrors.KindPreconditionFailed)
}

func TestListingService_UnlistListing(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	mine := seedListing(t, fx.listings, owner.ID, "1 Admiralty Road", entity.ListingStatusLive)
	theirs := seedListing(t, fx.listings, uuid.New(), "2 Admiralty Road", entity.ListingStatusLive)

	_, err := fx.service.UnlistListing(ctx, owner, theirs.ID, "")
	assertKind(t, err, domainerrors.KindForbidden)

	_, err = fx.service.UnlistListing(ctx, newActor(entity.RoleMLAnalyzer), mine.ID, "")
	assertKind(t, err, domainerrors.KindForbidden)

	result, err := fx.service.UnlistListing(ctx, owner, mine.ID, "sold")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusUnlisted, result.Listing.Status)

	result, err = fx.service.UnlistListing(ctx, newActor(entity.RoleAdmin), theirs.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusUnlisted, result.Listing.Status)

	_, err = fx.service.UnlistListing(ctx, owner, mine.ID, "")
	assertKind(t, err, domainerrors.KindPreconditionFailed)
}

func TestListingService_CheckDuplicates_ExactAddress(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	l2 := seedListing(t, fx.listings, uuid.New(), "12 Admiralty Way, Lekki", entity.ListingStatusLive)
	l1 := seedListing(t, fx.listings, owner.ID, "12 Admiralty Way, Lekki", entity.ListingStatusPendingMLValidation)

	result, err := fx.service.CheckDuplicates(ctx, owner, &usecase.DuplicateCheckInput{ListingID: l1.ID})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRadiusKm, result.RadiusKm)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, l2.ID, result.Candidates[0].ListingID)
	assert.Equal(t, entity.DuplicateTypeExactAddress, result.Candidates[0].DuplicateType)
	assert.Equal(t, entity.ConfidenceHigh, result.Candidates[0].Confidence)
}

func TestListingService_CheckDuplicates_Proximity(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	l3 := seedListingAt(t, fx.listings, owner.ID, "Plot 3, Lekki Phase 1", entity.ListingStatusLive, 6.4281, 3.4219)
	l4 := seedListingAt(t, fx.listings, uuid.New(), "Block 4, Admiralty Estate", entity.ListingStatusLive, 6.4285, 3.4223)

	result, err := fx.service.CheckDuplicates(ctx, owner, &usecase.DuplicateCheckInput{
		ListingID: l3.ID,
		RadiusKm:  floatPtr(0.1),
	})
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)

	candidate := result.Candidates[0]
	assert.Equal(t, l4.ID, candidate.ListingID)
	assert.Equal(t, entity.DuplicateTypeGeospatialProximity, candidate.DuplicateType)
	assert.Equal(t, entity.ConfidenceMedium, candidate.Confidence)
	require.NotNil(t, candidate.DistanceKm)
	assert.InDelta(t, 0.06, *candidate.DistanceKm, 0.01)
}

func TestListingService_CheckDuplicates_SameOwner(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	l5 := seedListing(t, fx.listings, owner.ID, "6 Oniru Estate", entity.ListingStatusDraft)
	l6, err := fx.service.SubmitListing(ctx, owner, &usecase.ListingDraft{Address: "40 Ligali Ayorinde Street"})
	require.NoError(t, err)
	assert.True(t, l6.Listing.IsDuplicate)

	result, err := fx.service.CheckDuplicates(ctx, owner, &usecase.DuplicateCheckInput{ListingID: l6.Listing.ID})
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, l5.ID, result.Candidates[0].ListingID)
	assert.Equal(t, entity.DuplicateTypeSameOwner, result.Candidates[0].DuplicateType)
	assert.Equal(t, entity.ConfidenceHigh, result.Candidates[0].Confidence)
}

func TestListingService_CheckDuplicates_IsReadOnlyAndIdempotent(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	seedListing(t, fx.listings, uuid.New(), "5 Alfred Rewane Road", entity.ListingStatusLive)
	seedListingAt(t, fx.listings, uuid.New(), "Tower B, Alfred Rewane", entity.ListingStatusPendingVetting, 6.4450, 3.4300)
	listing := seedListingAt(t, fx.listings, owner.ID, "5 Alfred Rewane Road", entity.ListingStatusPendingMLValidation, 6.4452, 3.4301)

	input := &usecase.DuplicateCheckInput{ListingID: listing.ID, RadiusKm: floatPtr(0.5)}
	first, err := fx.service.CheckDuplicates(ctx, owner, input)
	require.NoError(t, err)
	second, err := fx.service.CheckDuplicates(ctx, owner, input)
	require.NoError(t, err)

	assert.Len(t, first.Candidates, 2)
	assert.Equal(t, first, second)

	stored, err := fx.listings.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.Version, stored.Version)
	assert.False(t, stored.IsDuplicate)
	assert.Empty(t, fx.auditTrail(t, listing.ID))
}

func TestListingService_CheckDuplicates_Overrides(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	other := seedListing(t, fx.listings, uuid.New(), "77 Norman Williams Street", entity.ListingStatusLive)
	listing := seedListing(t, fx.listings, owner.ID, "1 Alexander Avenue", entity.ListingStatusPendingVetting)

	address := "77 Norman Williams Street"
	result, err := fx.service.CheckDuplicates(ctx, newActor(entity.RoleVettingAgent), &usecase.DuplicateCheckInput{
		ListingID: listing.ID,
		Address:   &address,
	})
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, other.ID, result.Candidates[0].ListingID)
}

func TestListingService_CheckDuplicates_Rejections(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)
	listing := seedListing(t, fx.listings, owner.ID, "3 Keffi Street", entity.ListingStatusPendingVetting)

	blank := " , "
	tests := []struct {
		name  string
		actor entity.Actor
		input *usecase.DuplicateCheckInput
		kind  domainerrors.Kind
	}{
		{
			name:  "radius above maximum",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID, RadiusKm: floatPtr(50)},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "radius below minimum",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID, RadiusKm: floatPtr(0)},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "blank address override",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID, Address: &blank},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "radius is not a number",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID, RadiusKm: floatPtr(math.NaN())},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "radius is infinite",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID, RadiusKm: floatPtr(math.Inf(1))},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "coordinate overrides are not numbers",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID, Latitude: floatPtr(math.NaN()), Longitude: floatPtr(math.NaN())},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "longitude override out of range",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID, Latitude: floatPtr(6.4), Longitude: floatPtr(181)},
			kind:  domainerrors.KindInvalidInput,
		},
		{
			name:  "another owner cannot see the listing",
			actor: newActor(entity.RoleOwner),
			input: &usecase.DuplicateCheckInput{ListingID: listing.ID},
			kind:  domainerrors.KindNotFound,
		},
		{
			name:  "unknown listing",
			actor: owner,
			input: &usecase.DuplicateCheckInput{ListingID: uuid.New()},
			kind:  domainerrors.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := fx.service.CheckDuplicates(ctx, tt.actor, tt.input)
			assert.Nil(t, result)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestListingService_ListAuditTrail(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)

	submitted, err := fx.service.SubmitListing(ctx, owner, &usecase.ListingDraft{Address: "11 Kofo Abayomi Street"})
	require.NoError(t, err)
	_, err = fx.service.RecordMLVerdict(ctx, newActor(entity.RoleMLAnalyzer), &usecase.MLVerdictInput{
		ListingID: submitted.Listing.ID,
		Verdict:   entity.MLVerdictPassed,
	})
	require.NoError(t, err)

	_, err = fx.service.ListAuditTrail(ctx, owner, submitted.Listing.ID)
	assertKind(t, err, domainerrors.KindForbidden)

	_, err = fx.service.ListAuditTrail(ctx, newActor(entity.RoleAdmin), uuid.New())
	assertKind(t, err, domainerrors.KindNotFound)

	entries, err := fx.service.ListAuditTrail(ctx, newActor(entity.RoleAdmin), submitted.Listing.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.AuditActionListingSubmitted, entries[0].Action)
	assert.Equal(t, entity.AuditActionMLVerdictRecorded, entries[1].Action)
}

func TestListingService_GetListing(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	owner := newActor(entity.RoleOwner)
	listing := seedListing(t, fx.listings, owner.ID, "15 Ikoyi Crescent", entity.ListingStatusPendingVetting)

	got, err := fx.service.GetListing(ctx, owner, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)

	got, err = fx.service.GetListing(ctx, newActor(entity.RoleVettingAgent), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)

	_, err = fx.service.GetListing(ctx, newActor(entity.RoleOwner), listing.ID)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)

	_, err = fx.service.GetListing(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}
