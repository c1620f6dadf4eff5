package service

import "proptrust/internal/domain/entity"

// Capability is a pipeline action guarded by role.
type Capability string

const (
	CapabilitySubmitListing     Capability = "listing.submit"
	CapabilityRecordMLVerdict   Capability = "listing.ml_verdict"
	CapabilityVettingDecision   Capability = "listing.vetting_decision"
	CapabilityResolveDuplicate  Capability = "listing.resolve_duplicate"
	CapabilityFlagDuplicate     Capability = "listing.flag_duplicate"
	CapabilityViewAuditTrail    Capability = "listing.audit_trail"
	CapabilityViewAnyListing    Capability = "listing.view_any"
	CapabilityUnlistAnyListing  Capability = "listing.unlist_any"
	CapabilityCheckAnyDuplicate Capability = "listing.check_duplicates_any"
)

// Authorizer decides whether a set of roles grants a capability.
type Authorizer interface {
	Can(roles entity.Roles, capability Capability) bool
}
