package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"proptrust/internal/delivery/api/middleware"
	"proptrust/internal/delivery/api/response"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/verification"
	"proptrust/internal/errors"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler exposes the verification pipeline over HTTP.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// SubmitListingRequest is the body of POST /listings.
type SubmitListingRequest struct {
	Title       string   `json:"title" validate:"max=200"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Address     string   `json:"address" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,gte=-180,lte=180"`
	SaveAsDraft bool     `json:"save_as_draft"`
}

// MLVerdictRequest is the body of POST /listings/:id/ml-verdict.
type MLVerdictRequest struct {
	Verdict         string   `json:"verdict" validate:"required,oneof=passed failed review_required"`
	ConfidenceScore *float64 `json:"confidence_score" validate:"omitempty,gte=0,lte=1"`
	Notes           string   `json:"notes"`
	FlaggedIssues   []string `json:"flagged_issues"`
}

// VettingDecisionRequest is the body of POST /listings/:id/vetting-decision.
type VettingDecisionRequest struct {
	Action          string     `json:"action" validate:"required,oneof=approve reject schedule flag_issue"`
	Notes           string     `json:"notes"`
	ScheduledDate   *time.Time `json:"scheduled_date" validate:"required_if=Action schedule"`
	RejectionReason string     `json:"rejection_reason" validate:"required_if=Action reject"`
}

// DuplicateResolutionRequest is the body of POST /listings/:id/duplicate-resolution.
type DuplicateResolutionRequest struct {
	Action          string     `json:"action" validate:"required,oneof=keep_both keep_master reject_duplicate"`
	MasterListingID *uuid.UUID `json:"master_listing_id" validate:"required_if=Action keep_master"`
	RejectionReason string     `json:"rejection_reason"`
	Notes           string     `json:"notes"`
}

// NotesRequest is the optional body of flag and unlist requests.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// PipelineResultResponse is returned by every accepted transition.
type PipelineResultResponse struct {
	Listing *entity.Listing `json:"listing"`
	Message string          `json:"message"`
}

// SubmitListing handles POST /listings
func (h *ListingHandler) SubmitListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req SubmitListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.listingUC.SubmitListing(c.Request().Context(), actor, &usecase.ListingDraft{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		SaveAsDraft: req.SaveAsDraft,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPipelineResultResponse(result))
}

// GetListing handles GET /listings/:id
func (h *ListingHandler) GetListing(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), actor, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// SubmitDraft handles POST /listings/:id/submit
func (h *ListingHandler) SubmitDraft(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	result, err := h.listingUC.SubmitDraft(c.Request().Context(), actor, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPipelineResultResponse(result))
}

// RecordMLVerdict handles POST /listings/:id/ml-verdict
func (h *ListingHandler) RecordMLVerdict(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	var req MLVerdictRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.listingUC.RecordMLVerdict(c.Request().Context(), actor, &usecase.MLVerdictInput{
		ListingID:       listingID,
		Verdict:         entity.MLVerdict(req.Verdict),
		ConfidenceScore: req.ConfidenceScore,
		Notes:           req.Notes,
		FlaggedIssues:   req.FlaggedIssues,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPipelineResultResponse(result))
}

// RecordVettingDecision handles POST /listings/:id/vetting-decision
func (h *ListingHandler) RecordVettingDecision(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	var req VettingDecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.listingUC.RecordVettingDecision(c.Request().Context(), actor, &usecase.VettingDecisionInput{
		ListingID:       listingID,
		Action:          verification.VettingAction(req.Action),
		Notes:           req.Notes,
		ScheduledDate:   req.ScheduledDate,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPipelineResultResponse(result))
}

// ResolveDuplicate handles POST /listings/:id/duplicate-resolution
func (h *ListingHandler) ResolveDuplicate(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	var req DuplicateResolutionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.listingUC.ResolveDuplicate(c.Request().Context(), actor, &usecase.DuplicateResolutionInput{
		ListingID:       listingID,
		Action:          verification.ResolutionAction(req.Action),
		MasterListingID: req.MasterListingID,
		RejectionReason: req.RejectionReason,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPipelineResultResponse(result))
}

// FlagDuplicate handles POST /listings/:id/duplicate-flag
func (h *ListingHandler) FlagDuplicate(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	var req NotesRequest
	if err := bindOptionalBody(c, &req); err != nil {
		return err
	}

	result, err := h.listingUC.FlagDuplicate(c.Request().Context(), actor, listingID, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPipelineResultResponse(result))
}

// UnlistListing handles POST /listings/:id/unlist
func (h *ListingHandler) UnlistListing(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	var req NotesRequest
	if err := bindOptionalBody(c, &req); err != nil {
		return err
	}

	result, err := h.listingUC.UnlistListing(c.Request().Context(), actor, listingID, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPipelineResultResponse(result))
}

// CheckDuplicates handles GET /listings/:id/duplicates?address=&lat=&lon=&radius_km=
func (h *ListingHandler) CheckDuplicates(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	input := &usecase.DuplicateCheckInput{ListingID: listingID}
	if address := c.QueryParam("address"); address != "" {
		input.Address = &address
	}

	for name, target := range map[string]**float64{
		"lat":       &input.Latitude,
		"lon":       &input.Longitude,
		"radius_km": &input.RadiusKm,
	} {
		value, err := optionalFloatQuery(c, name)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("query parameter " + name + " must be a number")
		}
		*target = value
	}

	result, err := h.listingUC.CheckDuplicates(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListAuditTrail handles GET /listings/:id/audit-trail
func (h *ListingHandler) ListAuditTrail(c echo.Context) error {
	actor, listingID, err := actorAndListingID(c)
	if err != nil {
		return err
	}

	entries, err := h.listingUC.ListAuditTrail(c.Request().Context(), actor, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// actorAndListingID reads the caller and the :id path parameter.
func actorAndListingID(c echo.Context) (entity.Actor, uuid.UUID, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return entity.Actor{}, uuid.Nil, domainerrors.ErrUnauthorized
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return entity.Actor{}, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	return actor, listingID, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// bindOptionalBody binds a JSON body when one is sent.
func bindOptionalBody(c echo.Context, req any) error {
	if c.Request().ContentLength == 0 {
		return nil
	}

	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return nil
}

func optionalFloatQuery(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	// ParseFloat accepts "NaN" and "Inf".
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errors.Errorf("%s is not finite", name)
	}

	return &value, nil
}

func toPipelineResultResponse(result *usecase.PipelineResult) *PipelineResultResponse {
	return &PipelineResultResponse{
		Listing: result.Listing,
		Message: result.Message,
	}
}
