// Package authz maps account roles to pipeline capabilities with casbin.
package authz

import (
	_ "embed"
	"log/slog"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/service"
	"proptrust/internal/errors"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed rbac_model.conf
var modelText string

// rolePolicies lists the capabilities granted directly to each role.
var rolePolicies = map[entity.Role][]service.Capability{
	entity.RoleOwner: {
		service.CapabilitySubmitListing,
	},
	entity.RoleMLAnalyzer: {
		service.CapabilityRecordMLVerdict,
	},
	entity.RoleVettingAgent: {
		service.CapabilityVettingDecision,
		service.CapabilityViewAnyListing,
		service.CapabilityCheckAnyDuplicate,
	},
	entity.RoleAdmin: {
		service.CapabilityResolveDuplicate,
		service.CapabilityFlagDuplicate,
		service.CapabilityViewAuditTrail,
		service.CapabilityUnlistAnyListing,
	},
}

// roleInheritance: admin holds everything a vetting agent holds.
var roleInheritance = [][]string{
	{entity.RoleAdmin.String(), entity.RoleVettingAgent.String()},
}

type casbinAuthorizer struct {
	enforcer *casbin.SyncedEnforcer
	logger   *slog.Logger
}

// NewAuthorizer builds the role policy in memory.
func NewAuthorizer(logger *slog.Logger) (service.Authorizer, error) {
	enforcer, err := NewEnforcer()
	if err != nil {
		return nil, err
	}

	return &casbinAuthorizer{
		enforcer: enforcer,
		logger:   logger,
	}, nil
}

// NewEnforcer creates a synced enforcer loaded with the built-in role policies.
func NewEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse rbac model")
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create enforcer")
	}

	policies := make([][]string, 0)
	for role, capabilities := range rolePolicies {
		for _, capability := range capabilities {
			policies = append(policies, []string{role.String(), string(capability)})
		}
	}

	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, errors.Wrap(err, "failed to seed role policies")
	}
	if _, err := enforcer.AddGroupingPolicies(roleInheritance); err != nil {
		return nil, errors.Wrap(err, "failed to seed role inheritance")
	}

	return enforcer, nil
}

// Can reports whether any of the roles grants the capability.
func (a *casbinAuthorizer) Can(roles entity.Roles, capability service.Capability) bool {
	for _, role := range roles {
		allowed, err := a.enforcer.Enforce(role.String(), string(capability))
		if err != nil {
			a.logger.Error("Authorization check failed",
				slog.String("role", role.String()),
				slog.String("capability", string(capability)),
				slog.Any("error", err),
			)

			continue
		}
		if allowed {
			return true
		}
	}

	return false
}
