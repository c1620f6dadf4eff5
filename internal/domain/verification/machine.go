// Package verification holds the listing state machine. It is pure: Apply computes the next
// listing state and the audit facts of a transition without touching storage.
package verification

import (
	"fmt"
	"strings"
	"time"

	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"

	"github.com/google/uuid"
)

// EventKind names an event that may move a listing through the pipeline.
type EventKind string

const (
	EventSubmit              EventKind = "submit"
	EventSaveDraft           EventKind = "save_draft"
	EventSubmitDraft         EventKind = "submit_draft"
	EventMLVerdict           EventKind = "ml_verdict"
	EventVettingDecision     EventKind = "vetting_decision"
	EventDuplicateResolution EventKind = "duplicate_resolution"
	EventFlagDuplicate       EventKind = "flag_duplicate"
	EventUnlist              EventKind = "unlist"
)

// VettingAction is a human vetting decision.
type VettingAction string

const (
	VettingApprove   VettingAction = "approve"
	VettingReject    VettingAction = "reject"
	VettingSchedule  VettingAction = "schedule"
	VettingFlagIssue VettingAction = "flag_issue"
)

// ResolutionAction is an admin decision on a suspected duplicate.
type ResolutionAction string

const (
	ResolutionKeepBoth        ResolutionAction = "keep_both"
	ResolutionKeepMaster      ResolutionAction = "keep_master"
	ResolutionRejectDuplicate ResolutionAction = "reject_duplicate"
)

// Event is a request to move a listing. Only the fields relevant to Kind are read.
type Event struct {
	Kind  EventKind
	Notes string

	// ml_verdict
	Verdict         entity.MLVerdict
	ConfidenceScore *float64
	FlaggedIssues   []string

	// vetting_decision
	VettingAction VettingAction
	ScheduledDate *time.Time

	// duplicate_resolution
	Resolution      ResolutionAction
	MasterListingID *uuid.UUID

	// vetting reject and reject_duplicate
	RejectionReason string

	// submit, submit_draft: number of duplicate candidates found by the matcher
	DuplicateCandidates []uuid.UUID
}

// Outcome is an accepted transition.
type Outcome struct {
	Listing *entity.Listing // next state, a copy of the input with the effect applied
	Action  entity.AuditAction
	From    entity.ListingStatus // empty for submissions
	To      entity.ListingStatus
	Details map[string]any
}

// StatusChanged reports whether the transition changed the listing status.
func (o *Outcome) StatusChanged() bool {
	return o.From != o.To
}

// Validate checks the structure of an event independently of any listing state.
func Validate(ev Event) error {
	switch ev.Kind {
	case EventSubmit, EventSaveDraft, EventSubmitDraft, EventFlagDuplicate, EventUnlist:
		return nil
	case EventMLVerdict:
		if !ev.Verdict.IsValid() {
			return invalid("unknown ml verdict %q", ev.Verdict)
		}
		if ev.ConfidenceScore != nil && (*ev.ConfidenceScore < 0 || *ev.ConfidenceScore > 1) {
			return invalid("confidence score must be between 0 and 1")
		}

		return nil
	case EventVettingDecision:
		switch ev.VettingAction {
		case VettingApprove, VettingFlagIssue:
			return nil
		case VettingReject:
			if strings.TrimSpace(ev.RejectionReason) == "" {
				return invalid("rejection reason is required to reject a listing")
			}

			return nil
		case VettingSchedule:
			if ev.ScheduledDate == nil || ev.ScheduledDate.IsZero() {
				return invalid("scheduled date is required to schedule vetting")
			}

			return nil
		default:
			return invalid("unknown vetting action %q", ev.VettingAction)
		}
	case EventDuplicateResolution:
		switch ev.Resolution {
		case ResolutionKeepBoth:
			return nil
		case ResolutionKeepMaster:
			if ev.MasterListingID == nil || *ev.MasterListingID == uuid.Nil {
				return invalid("master listing id is required for keep_master")
			}

			return nil
		case ResolutionRejectDuplicate:
			if strings.TrimSpace(ev.RejectionReason) == "" {
				return invalid("rejection reason is required for reject_duplicate")
			}

			return nil
		default:
			return invalid("unknown resolution action %q", ev.Resolution)
		}
	default:
		return invalid("unknown event %q", ev.Kind)
	}
}

// Apply validates ev against the current listing and returns the accepted transition.
// A guard mismatch returns ErrPreconditionFailed and leaves current untouched.
func Apply(current *entity.Listing, ev Event, now time.Time) (*Outcome, error) {
	if err := Validate(ev); err != nil {
		return nil, err
	}

	next := current.Clone()
	out := &Outcome{
		Listing: next,
		From:    current.Status,
		Details: map[string]any{},
	}

	var err error
	switch ev.Kind {
	case EventSubmit, EventSaveDraft:
		err = applySubmit(current, next, out, ev)
	case EventSubmitDraft:
		err = applySubmitDraft(current, next, out, ev)
	case EventMLVerdict:
		err = applyMLVerdict(current, next, out, ev)
	case EventVettingDecision:
		err = applyVetting(current, next, out, ev, now)
	case EventDuplicateResolution:
		err = applyResolution(current, next, out, ev)
	case EventFlagDuplicate:
		err = applyFlagDuplicate(current, next, out)
	case EventUnlist:
		err = applyUnlist(current, next, out)
	}
	if err != nil {
		return nil, err
	}

	next.UpdatedAt = now
	if ev.Kind == EventSubmit || ev.Kind == EventSaveDraft {
		next.CreatedAt = now
		next.Version = 1
	} else {
		next.Version = current.Version + 1
	}

	out.To = next.Status
	out.Details[entity.AuditDetailPreviousStatus] = string(out.From)
	out.Details[entity.AuditDetailNewStatus] = string(out.To)
	if notes := strings.TrimSpace(ev.Notes); notes != "" {
		out.Details[entity.AuditDetailNotes] = notes
	}

	return out, nil
}

func applySubmit(current, next *entity.Listing, out *Outcome, ev Event) error {
	if current.Status != "" {
		return precondition("listing was already submitted")
	}
	if err := ValidateListingFields(current); err != nil {
		return err
	}

	next.NormalizedAddress = entity.NormalizeAddress(current.Address)
	next.IsDuplicate = len(ev.DuplicateCandidates) > 0
	if ev.Kind == EventSaveDraft {
		next.Status = entity.ListingStatusDraft
		out.Action = entity.AuditActionDraftSaved
	} else {
		next.Status = entity.ListingStatusPendingMLValidation
		out.Action = entity.AuditActionListingSubmitted
	}
	recordCandidates(out, ev.DuplicateCandidates)

	return nil
}

func applySubmitDraft(current, next *entity.Listing, out *Outcome, ev Event) error {
	if current.Status != entity.ListingStatusDraft {
		return precondition("listing is %s, not draft", current.Status)
	}

	next.Status = entity.ListingStatusPendingMLValidation
	next.IsDuplicate = len(ev.DuplicateCandidates) > 0
	out.Action = entity.AuditActionDraftSubmitted
	recordCandidates(out, ev.DuplicateCandidates)

	return nil
}

func applyMLVerdict(current, next *entity.Listing, out *Outcome, ev Event) error {
	if current.Status != entity.ListingStatusPendingMLValidation {
		return precondition("listing is %s, not pending_ml_validation", current.Status)
	}

	next.MLVerdict = ev.Verdict
	next.MLConfidenceScore = ev.ConfidenceScore
	switch ev.Verdict {
	case entity.MLVerdictPassed:
		// A suspected duplicate waits for an admin instead of a vetting agent.
		if current.IsDuplicate {
			next.Status = entity.ListingStatusDuplicateCheck
		} else {
			next.Status = entity.ListingStatusPendingVetting
		}
	case entity.MLVerdictReviewRequired:
		next.FlaggedForReview = true
	case entity.MLVerdictFailed:
	}

	out.Action = entity.AuditActionMLVerdictRecorded
	out.Details["verdict"] = string(ev.Verdict)
	if ev.ConfidenceScore != nil {
		out.Details["confidence_score"] = *ev.ConfidenceScore
	}
	if len(ev.FlaggedIssues) > 0 {
		out.Details["flagged_issues"] = ev.FlaggedIssues
	}

	return nil
}

func applyVetting(current, next *entity.Listing, out *Outcome, ev Event, now time.Time) error {
	if current.Status != entity.ListingStatusPendingVetting {
		return precondition("listing is %s, not pending_vetting", current.Status)
	}

	out.Details["vetting_action"] = string(ev.VettingAction)
	switch ev.VettingAction {
	case VettingApprove:
		verifiedAt := now
		next.Status = entity.ListingStatusLive
		next.VerifiedAt = &verifiedAt
		out.Action = entity.AuditActionVettingApproved
	case VettingReject:
		next.Status = entity.ListingStatusRejected
		next.RejectionReason = strings.TrimSpace(ev.RejectionReason)
		out.Action = entity.AuditActionVettingRejected
		out.Details["rejection_reason"] = next.RejectionReason
	case VettingSchedule:
		date := ev.ScheduledDate.UTC()
		next.ScheduledVettingDate = &date
		out.Action = entity.AuditActionVettingScheduled
		out.Details["scheduled_date"] = date.Format(time.RFC3339)
	case VettingFlagIssue:
		next.FlaggedForReview = true
		out.Action = entity.AuditActionVettingIssueFlagged
	}

	return nil
}

func applyResolution(current, next *entity.Listing, out *Outcome, ev Event) error {
	if !current.IsDuplicate {
		return precondition("listing is not flagged as a duplicate")
	}
	if current.Status != entity.ListingStatusDuplicateCheck && current.Status != entity.ListingStatusLive {
		return precondition("listing is %s, duplicates are resolved from duplicate_check or live", current.Status)
	}

	out.Details["resolution"] = string(ev.Resolution)
	switch ev.Resolution {
	case ResolutionKeepBoth:
		next.IsDuplicate = false
		// Clearing the flag releases a held listing back to vetting; a live listing stays live.
		if current.Status == entity.ListingStatusDuplicateCheck {
			next.Status = entity.ListingStatusPendingVetting
		}
		out.Action = entity.AuditActionDuplicateKeptBoth
	case ResolutionKeepMaster:
		if *ev.MasterListingID == current.ID {
			return invalid("a listing cannot be its own master")
		}
		next.Status = entity.ListingStatusRejected
		next.RejectionReason = DuplicateOfReason(*ev.MasterListingID)
		out.Action = entity.AuditActionDuplicateKeptMaster
		out.Details["master_listing_id"] = ev.MasterListingID.String()
		out.Details["rejection_reason"] = next.RejectionReason
	case ResolutionRejectDuplicate:
		next.Status = entity.ListingStatusRejected
		next.RejectionReason = strings.TrimSpace(ev.RejectionReason)
		out.Action = entity.AuditActionDuplicateRejected
		out.Details["rejection_reason"] = next.RejectionReason
	}

	return nil
}

func applyFlagDuplicate(current, next *entity.Listing, out *Outcome) error {
	if current.IsDuplicate {
		return precondition("listing is already flagged as a duplicate")
	}

	switch current.Status {
	case entity.ListingStatusPendingVetting:
		next.Status = entity.ListingStatusDuplicateCheck
	case entity.ListingStatusPendingMLValidation, entity.ListingStatusLive:
	default:
		return precondition("listing is %s and cannot be flagged as a duplicate", current.Status)
	}

	next.IsDuplicate = true
	out.Action = entity.AuditActionDuplicateFlagged

	return nil
}

func applyUnlist(current, next *entity.Listing, out *Outcome) error {
	if current.Status != entity.ListingStatusLive {
		return precondition("listing is %s, only live listings can be unlisted", current.Status)
	}

	next.Status = entity.ListingStatusUnlisted
	out.Action = entity.AuditActionListingUnlisted

	return nil
}

func recordCandidates(out *Outcome, candidates []uuid.UUID) {
	if len(candidates) == 0 {
		return
	}

	ids := make([]string, len(candidates))
	for i, id := range candidates {
		ids[i] = id.String()
	}
	out.Details["duplicate_candidates"] = ids
}

// DuplicateOfReason is the rejection reason recorded by a keep_master resolution.
func DuplicateOfReason(masterID uuid.UUID) string {
	return "duplicate of " + masterID.String()
}

func precondition(format string, args ...any) error {
	return domainerrors.ErrPreconditionFailed.WithDetails(fmt.Sprintf(format, args...))
}

func invalid(format string, args ...any) error {
	return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf(format, args...))
}
