package authz

import (
	"io"
	"log/slog"
	"testing"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasbinAuthorizer_Can(t *testing.T) {
	authorizer, err := NewAuthorizer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	tests := []struct {
		name       string
		roles      entity.Roles
		capability service.Capability
		want       bool
	}{
		{"owner submits", entity.Roles{entity.RoleOwner}, service.CapabilitySubmitListing, true},
		{"owner cannot vet", entity.Roles{entity.RoleOwner}, service.CapabilityVettingDecision, false},
		{"owner cannot record verdict", entity.Roles{entity.RoleOwner}, service.CapabilityRecordMLVerdict, false},
		{"analyzer records verdict", entity.Roles{entity.RoleMLAnalyzer}, service.CapabilityRecordMLVerdict, true},
		{"analyzer cannot resolve", entity.Roles{entity.RoleMLAnalyzer}, service.CapabilityResolveDuplicate, false},
		{"agent vets", entity.Roles{entity.RoleVettingAgent}, service.CapabilityVettingDecision, true},
		{"agent views any", entity.Roles{entity.RoleVettingAgent}, service.CapabilityViewAnyListing, true},
		{"agent cannot read audit trail", entity.Roles{entity.RoleVettingAgent}, service.CapabilityViewAuditTrail, false},
		{"admin vets through inheritance", entity.Roles{entity.RoleAdmin}, service.CapabilityVettingDecision, true},
		{"admin resolves", entity.Roles{entity.RoleAdmin}, service.CapabilityResolveDuplicate, true},
		{"admin reads audit trail", entity.Roles{entity.RoleAdmin}, service.CapabilityViewAuditTrail, true},
		{"admin cannot record verdict", entity.Roles{entity.RoleAdmin}, service.CapabilityRecordMLVerdict, false},
		{"any role of several", entity.Roles{entity.RoleOwner, entity.RoleMLAnalyzer}, service.CapabilityRecordMLVerdict, true},
		{"no roles", nil, service.CapabilitySubmitListing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authorizer.Can(tt.roles, tt.capability))
		})
	}
}
