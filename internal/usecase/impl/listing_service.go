package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"proptrust/config"
	deliverycontext "proptrust/internal/delivery/context"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/geo"
	"proptrust/internal/domain/repository"
	"proptrust/internal/domain/service"
	"proptrust/internal/domain/verification"
	"proptrust/internal/errors"
	"proptrust/internal/infra/metrics"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Operation names used in logs and failure metrics.
const (
	opSubmitListing   = "submit_listing"
	opSubmitDraft     = "submit_draft"
	opRecordMLVerdict = "record_ml_verdict"
	opVettingDecision = "record_vetting_decision"
	opResolveDup      = "resolve_duplicate"
	opFlagDuplicate   = "flag_duplicate"
	opUnlistListing   = "unlist_listing"
	opCheckDuplicates = "check_duplicates"
	opListAuditTrail  = "list_audit_trail"
	opGetListing      = "get_listing"
)

type listingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	auditLog    usecase.AuditLog
	matcher     usecase.DuplicateMatcher
	dispatcher  usecase.NotificationDispatcher
	authorizer  service.Authorizer
	metrics     *metrics.PipelineMetrics
	pipeline    *config.PipelineConfig
	now         func() time.Time
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for the listing pipeline, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	AuditLog    usecase.AuditLog
	Matcher     usecase.DuplicateMatcher
	Dispatcher  usecase.NotificationDispatcher
	Authorizer  service.Authorizer
	Metrics     *metrics.PipelineMetrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService creates the pipeline coordinator.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		auditLog:    params.AuditLog,
		matcher:     params.Matcher,
		dispatcher:  params.Dispatcher,
		authorizer:  params.Authorizer,
		metrics:     params.Metrics,
		pipeline:    params.Config.Pipeline,
		now:         utcNow,
		logger:      params.Logger,
	}
}

func (s *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// prepareFunc runs inside the transition's transaction after the listing is loaded. It checks
// ownership and related listings and may complete the event.
type prepareFunc func(ctx context.Context, factory repository.RepositoryFactory, current *entity.Listing, ev *verification.Event) error

// SubmitListing validates and stores a new listing.
func (s *listingService) SubmitListing(ctx context.Context, actor entity.Actor, draft *usecase.ListingDraft) (*usecase.PipelineResult, error) {
	if err := s.require(actor, service.CapabilitySubmitListing); err != nil {
		return nil, s.fail(ctx, opSubmitListing, err)
	}

	candidate := &entity.Listing{
		OwnerID:     actor.ID,
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Price:       draft.Price,
		Address:     strings.TrimSpace(draft.Address),
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
	}
	if err := verification.ValidateListingFields(candidate); err != nil {
		return nil, s.fail(ctx, opSubmitListing, err)
	}

	ev := verification.Event{Kind: verification.EventSubmit}
	if draft.SaveAsDraft {
		ev.Kind = verification.EventSaveDraft
	}

	ctx, cancel := context.WithTimeout(ctx, s.pipeline.OperationTimeout)
	defer cancel()

	var outcome *verification.Outcome
	var candidates []entity.DuplicateCandidate
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		listings := factory.NewListingRepository()

		candidate.ID = uuid.New()
		found, err := s.matcher.FindCandidates(ctx, listings, s.probeFor(candidate))
		if err != nil {
			return err
		}
		candidates = found
		ev.DuplicateCandidates = candidateIDs(found)

		outcome, err = verification.Apply(candidate, ev, s.now())
		if err != nil {
			return err
		}
		if err := listings.Create(ctx, outcome.Listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}

		return s.record(ctx, factory, actor, outcome)
	})
	if err != nil {
		return nil, s.fail(ctx, opSubmitListing, err)
	}

	s.metrics.ObserveCandidates(candidates)

	return s.succeed(ctx, opSubmitListing, outcome), nil
}

// SubmitDraft moves the owner's draft into document verification.
func (s *listingService) SubmitDraft(ctx context.Context, actor entity.Actor, listingID uuid.UUID) (*usecase.PipelineResult, error) {
	if err := s.require(actor, service.CapabilitySubmitListing); err != nil {
		return nil, s.fail(ctx, opSubmitDraft, err)
	}

	ev := verification.Event{Kind: verification.EventSubmitDraft}

	return s.transition(ctx, opSubmitDraft, actor, listingID, ev,
		func(ctx context.Context, factory repository.RepositoryFactory, current *entity.Listing, ev *verification.Event) error {
			if !current.IsOwnedBy(actor.ID) {
				return domainerrors.ErrListingOwnershipViolation
			}
			if current.Status != entity.ListingStatusDraft {
				return nil
			}

			found, err := s.matcher.FindCandidates(ctx, factory.NewListingRepository(), s.probeFor(current))
			if err != nil {
				return err
			}
			s.metrics.ObserveCandidates(found)
			ev.DuplicateCandidates = candidateIDs(found)

			return nil
		})
}

// RecordMLVerdict applies the analyzer's result.
func (s *listingService) RecordMLVerdict(ctx context.Context, actor entity.Actor, input *usecase.MLVerdictInput) (*usecase.PipelineResult, error) {
	if err := s.require(actor, service.CapabilityRecordMLVerdict); err != nil {
		return nil, s.fail(ctx, opRecordMLVerdict, err)
	}

	ev := verification.Event{
		Kind:            verification.EventMLVerdict,
		Notes:           input.Notes,
		Verdict:         input.Verdict,
		ConfidenceScore: input.ConfidenceScore,
		FlaggedIssues:   input.FlaggedIssues,
	}
	if err := verification.Validate(ev); err != nil {
		return nil, s.fail(ctx, opRecordMLVerdict, err)
	}

	return s.transition(ctx, opRecordMLVerdict, actor, input.ListingID, ev, nil)
}

// RecordVettingDecision applies a vetting agent's decision.
func (s *listingService) RecordVettingDecision(ctx context.Context, actor entity.Actor, input *usecase.VettingDecisionInput) (*usecase.PipelineResult, error) {
	if err := s.require(actor, service.CapabilityVettingDecision); err != nil {
		return nil, s.fail(ctx, opVettingDecision, err)
	}

	ev := verification.Event{
		Kind:            verification.EventVettingDecision,
		Notes:           input.Notes,
		VettingAction:   input.Action,
		ScheduledDate:   input.ScheduledDate,
		RejectionReason: input.RejectionReason,
	}
	if err := verification.Validate(ev); err != nil {
		return nil, s.fail(ctx, opVettingDecision, err)
	}

	return s.transition(ctx, opVettingDecision, actor, input.ListingID, ev, nil)
}

// ResolveDuplicate applies an admin's duplicate resolution. For keep_master the master listing
// must exist.
func (s *listingService) ResolveDuplicate(ctx context.Context, actor entity.Actor, input *usecase.DuplicateResolutionInput) (*usecase.PipelineResult, error) {
	if err := s.require(actor, service.CapabilityResolveDuplicate); err != nil {
		return nil, s.fail(ctx, opResolveDup, err)
	}

	ev := verification.Event{
		Kind:            verification.EventDuplicateResolution,
		Notes:           input.Notes,
		Resolution:      input.Action,
		MasterListingID: input.MasterListingID,
		RejectionReason: input.RejectionReason,
	}
	if err := verification.Validate(ev); err != nil {
		return nil, s.fail(ctx, opResolveDup, err)
	}
	if ev.Resolution == verification.ResolutionKeepMaster && *ev.MasterListingID == input.ListingID {
		return nil, s.fail(ctx, opResolveDup, domainerrors.ErrValidationFailed.WithDetails("a listing cannot be its own master"))
	}

	return s.transition(ctx, opResolveDup, actor, input.ListingID, ev,
		func(ctx context.Context, factory repository.RepositoryFactory, _ *entity.Listing, ev *verification.Event) error {
			if ev.Resolution != verification.ResolutionKeepMaster {
				return nil
			}

			_, err := factory.NewListingRepository().FindByID(ctx, *ev.MasterListingID)
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrMasterListingNotFound.WithDetails(ev.MasterListingID.String())
			}

			return err
		})
}

// FlagDuplicate marks a listing as a suspected duplicate.
func (s *listingService) FlagDuplicate(ctx context.Context, actor entity.Actor, listingID uuid.UUID, notes string) (*usecase.PipelineResult, error) {
	if err := s.require(actor, service.CapabilityFlagDuplicate); err != nil {
		return nil, s.fail(ctx, opFlagDuplicate, err)
	}

	ev := verification.Event{Kind: verification.EventFlagDuplicate, Notes: notes}

	return s.transition(ctx, opFlagDuplicate, actor, listingID, ev, nil)
}

// UnlistListing takes a live listing off the market. Owners may unlist their own listings.
func (s *listingService) UnlistListing(ctx context.Context, actor entity.Actor, listingID uuid.UUID, notes string) (*usecase.PipelineResult, error) {
	unlistAny := s.authorizer.Can(actor.Roles, service.CapabilityUnlistAnyListing)
	if !unlistAny && !actor.Roles.Contains(entity.RoleOwner) {
		return nil, s.fail(ctx, opUnlistListing, domainerrors.ErrForbidden.WithDetails("unlisting requires the owner or an admin"))
	}

	ev := verification.Event{Kind: verification.EventUnlist, Notes: notes}

	return s.transition(ctx, opUnlistListing, actor, listingID, ev,
		func(_ context.Context, _ repository.RepositoryFactory, current *entity.Listing, _ *verification.Event) error {
			if !unlistAny && !current.IsOwnedBy(actor.ID) {
				return domainerrors.ErrListingOwnershipViolation
			}

			return nil
		})
}

// CheckDuplicates runs the matcher for a stored listing without changing it. Nil overrides
// fall back to the stored values.
func (s *listingService) CheckDuplicates(ctx context.Context, actor entity.Actor, input *usecase.DuplicateCheckInput) (*usecase.DuplicateCheckResult, error) {
	radius, err := s.resolveRadius(input.RadiusKm)
	if err != nil {
		return nil, s.fail(ctx, opCheckDuplicates, err)
	}
	if input.Address != nil && entity.NormalizeAddress(*input.Address) == "" {
		return nil, s.fail(ctx, opCheckDuplicates, domainerrors.ErrValidationFailed.WithDetails("address override must contain letters or digits"))
	}
	if err := validateCoordinateOverrides(input.Latitude, input.Longitude); err != nil {
		return nil, s.fail(ctx, opCheckDuplicates, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.pipeline.OperationTimeout)
	defer cancel()

	current, err := s.visibleListing(ctx, actor, input.ListingID, service.CapabilityCheckAnyDuplicate)
	if err != nil {
		return nil, s.fail(ctx, opCheckDuplicates, err)
	}

	probe := s.probeFor(current)
	probe.RadiusKm = radius
	if input.Address != nil {
		probe.Address = *input.Address
	}
	if input.Latitude != nil {
		probe.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		probe.Longitude = input.Longitude
	}

	candidates, err := s.matcher.FindCandidates(ctx, s.listingRepo, probe)
	if err != nil {
		return nil, s.fail(ctx, opCheckDuplicates, err)
	}

	return &usecase.DuplicateCheckResult{
		ListingID:  current.ID,
		RadiusKm:   radius,
		Candidates: candidates,
	}, nil
}

// ListAuditTrail returns a listing's audit entries for admins.
func (s *listingService) ListAuditTrail(ctx context.Context, actor entity.Actor, listingID uuid.UUID) ([]*entity.AuditEntry, error) {
	if err := s.require(actor, service.CapabilityViewAuditTrail); err != nil {
		return nil, s.fail(ctx, opListAuditTrail, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.pipeline.OperationTimeout)
	defer cancel()

	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		return nil, s.fail(ctx, opListAuditTrail, err)
	}

	entries, err := s.auditLog.ListForTarget(ctx, listingID)
	if err != nil {
		return nil, s.fail(ctx, opListAuditTrail, err)
	}

	return entries, nil
}

// GetListing returns a listing to its owner or to staff. Anyone else gets ErrListingNotFound.
func (s *listingService) GetListing(ctx context.Context, actor entity.Actor, listingID uuid.UUID) (*entity.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.pipeline.OperationTimeout)
	defer cancel()

	listing, err := s.visibleListing(ctx, actor, listingID, service.CapabilityViewAnyListing)
	if err != nil {
		return nil, s.fail(ctx, opGetListing, err)
	}

	return listing, nil
}

// transition loads the listing, applies ev through the state machine and writes the listing,
// its audit entry and its notification in one transaction.
func (s *listingService) transition(ctx context.Context, op string, actor entity.Actor, listingID uuid.UUID, ev verification.Event, prepare prepareFunc) (*usecase.PipelineResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.pipeline.OperationTimeout)
	defer cancel()

	var outcome *verification.Outcome
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		listings := factory.NewListingRepository()

		current, err := listings.FindByID(ctx, listingID)
		if err != nil {
			return err
		}

		if prepare != nil {
			if err := prepare(ctx, factory, current, &ev); err != nil {
				return err
			}
		}

		outcome, err = verification.Apply(current, ev, s.now())
		if err != nil {
			return err
		}

		if err := listings.UpdateIfUnchanged(ctx, outcome.Listing, current.Status, current.Version); err != nil {
			return err
		}

		return s.record(ctx, factory, actor, outcome)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	return s.succeed(ctx, op, outcome), nil
}

// record appends the audit entry and enqueues the owner notification of an accepted outcome.
func (s *listingService) record(ctx context.Context, factory repository.RepositoryFactory, actor entity.Actor, outcome *verification.Outcome) error {
	entry, err := s.auditLog.Append(ctx, factory.NewAuditRepository(), &entity.AuditEntry{
		ActorID:  actor.ID,
		Action:   outcome.Action,
		TargetID: outcome.Listing.ID,
		Details:  outcome.Details,
	})
	if err != nil {
		return err
	}

	if _, err := s.dispatcher.Notify(ctx, factory.NewOutboxRepository(), NotificationFor(outcome.Listing, entry)); err != nil {
		return err
	}

	return nil
}

func (s *listingService) succeed(ctx context.Context, op string, outcome *verification.Outcome) *usecase.PipelineResult {
	s.metrics.ObserveTransition(outcome.Action, outcome.From, outcome.To)
	s.log(ctx).Info("Listing transition accepted",
		slog.String("operation", op),
		slog.String("listing_id", outcome.Listing.ID.String()),
		slog.String("action", string(outcome.Action)),
		slog.String("from", string(outcome.From)),
		slog.String("to", string(outcome.To)),
	)

	return &usecase.PipelineResult{
		Listing: outcome.Listing,
		Message: resultMessage(outcome),
	}
}

// fail translates err to the error returned to callers, then logs and counts it.
func (s *listingService) fail(ctx context.Context, op string, err error) error {
	mapped := translateListingError(ctx, err)
	s.metrics.ObserveFailure(op, mapped)

	logger := s.log(ctx)
	if domainerrors.KindOf(mapped) == domainerrors.KindInternal {
		logger.Error("Listing operation failed", slog.String("operation", op), slog.Any("error", err))
	} else {
		logger.Warn("Listing operation rejected", slog.String("operation", op), slog.Any("error", mapped))
	}

	return mapped
}

func translateListingError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domainerrors.ErrTimeout.WithDetails(err.Error())
	case errors.Is(err, repository.ErrListingNotFound):
		return domainerrors.ErrListingNotFound
	case errors.Is(err, repository.ErrListingStale):
		return domainerrors.ErrPreconditionFailed.WithDetails("listing changed while the action was processed")
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		return err
	}

	// Some drivers report an interrupted query without wrapping the context error.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domainerrors.ErrTimeout.WithDetails(err.Error())
	}
	if appErr != nil {
		return err
	}

	return errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "listing operation failed")
}

func (s *listingService) require(actor entity.Actor, capability service.Capability) error {
	if !s.authorizer.Can(actor.Roles, capability) {
		return domainerrors.ErrForbidden.WithDetails(fmt.Sprintf("missing capability %s", capability))
	}

	return nil
}

// visibleListing loads a listing the actor owns or may see through capability.
func (s *listingService) visibleListing(ctx context.Context, actor entity.Actor, listingID uuid.UUID, capability service.Capability) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(actor.ID) && !s.authorizer.Can(actor.Roles, capability) {
		return nil, domainerrors.ErrListingNotFound
	}

	return listing, nil
}

func (s *listingService) resolveRadius(radius *float64) (float64, error) {
	if radius == nil {
		return s.pipeline.DefaultRadiusKm, nil
	}
	if !(*radius >= s.pipeline.MinRadiusKm && *radius <= s.pipeline.MaxRadiusKm) {
		return 0, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radius_km must be between %v and %v", s.pipeline.MinRadiusKm, s.pipeline.MaxRadiusKm))
	}

	return *radius, nil
}

func validateCoordinateOverrides(lat, lon *float64) error {
	if lat != nil && !geo.ValidLatitude(*lat) {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be between -90 and 90")
	}
	if lon != nil && !geo.ValidLongitude(*lon) {
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be between -180 and 180")
	}

	return nil
}

func (s *listingService) probeFor(listing *entity.Listing) *usecase.DuplicateProbe {
	return &usecase.DuplicateProbe{
		ListingID: listing.ID,
		OwnerID:   listing.OwnerID,
		Address:   listing.Address,
		Latitude:  listing.Latitude,
		Longitude: listing.Longitude,
		RadiusKm:  s.pipeline.DefaultRadiusKm,
	}
}

func candidateIDs(candidates []entity.DuplicateCandidate) []uuid.UUID {
	ids := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ListingID
	}

	return ids
}

func resultMessage(outcome *verification.Outcome) string {
	listing := outcome.Listing

	switch outcome.Action {
	case entity.AuditActionListingSubmitted, entity.AuditActionDraftSubmitted:
		if listing.IsDuplicate {
			return "Listing submitted for document verification and flagged as a possible duplicate"
		}

		return "Listing submitted for document verification"
	case entity.AuditActionDraftSaved:
		return "Listing saved as draft"
	case entity.AuditActionMLVerdictRecorded:
		return fmt.Sprintf("ML verdict %s recorded, listing is %s", listing.MLVerdict, listing.Status)
	case entity.AuditActionVettingApproved:
		return "Listing approved and published"
	case entity.AuditActionVettingRejected:
		return "Listing rejected"
	case entity.AuditActionVettingScheduled:
		return "Vetting visit scheduled"
	case entity.AuditActionVettingIssueFlagged:
		return "Listing flagged for review"
	case entity.AuditActionDuplicateKeptBoth:
		return fmt.Sprintf("Duplicate flag cleared, listing is %s", listing.Status)
	case entity.AuditActionDuplicateKeptMaster:
		return "Listing rejected in favour of the master listing"
	case entity.AuditActionDuplicateRejected:
		return "Listing rejected as a duplicate"
	case entity.AuditActionDuplicateFlagged:
		return "Listing flagged as a possible duplicate"
	case entity.AuditActionListingUnlisted:
		return "Listing unlisted"
	default:
		return fmt.Sprintf("Listing moved from %s to %s", outcome.From, outcome.To)
	}
}
