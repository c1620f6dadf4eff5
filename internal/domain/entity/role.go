// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleOwner indicates a property owner submitting listings.
	RoleOwner Role = "owner"
	// RoleMLAnalyzer is the service identity of the automated document analyzer.
	RoleMLAnalyzer Role = "ml_analyzer"
	// RoleVettingAgent indicates a human agent performing on-site vetting.
	RoleVettingAgent Role = "vetting_agent"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleMLAnalyzer, RoleVettingAgent, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// IsStaff reports whether any role belongs to platform staff.
func (rs Roles) IsStaff() bool {
	return rs.Contains(RoleAdmin) || rs.Contains(RoleVettingAgent)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Actor is the authenticated caller of a pipeline operation.
type Actor struct {
	ID    uuid.UUID
	Roles Roles
}
