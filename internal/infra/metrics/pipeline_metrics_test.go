package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proptrust/config"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPipelineMetrics(registry, &config.Config{})

	m.ObserveTransition(entity.AuditActionVettingApproved, entity.ListingStatusPendingVetting, entity.ListingStatusLive)
	m.ObserveTransition(entity.AuditActionVettingApproved, entity.ListingStatusPendingVetting, entity.ListingStatusLive)
	m.ObserveFailure("record_ml_verdict", domainerrors.ErrPreconditionFailed)
	m.ObserveFailure("record_ml_verdict", nil)
	m.ObserveCandidates([]entity.DuplicateCandidate{
		{DuplicateType: entity.DuplicateTypeExactAddress},
		{DuplicateType: entity.DuplicateTypeSameOwner},
		{DuplicateType: entity.DuplicateTypeSameOwner},
	})
	m.ObserveNotification(NotificationDelivered)

	assert.InDelta(t, 2, testutil.ToFloat64(m.transitions.WithLabelValues("listing.vetting_approved", "pending_vetting", "live")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.transitionFailures.WithLabelValues("record_ml_verdict", "precondition_failed")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.duplicateMatches.WithLabelValues("same_owner")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notifications.WithLabelValues(NotificationDelivered)), 0)
}

func TestPipelineMetrics_NilSafe(t *testing.T) {
	var m *PipelineMetrics

	assert.NotPanics(t, func() {
		m.ObserveTransition(entity.AuditActionListingUnlisted, entity.ListingStatusLive, entity.ListingStatusUnlisted)
		m.ObserveFailure("op", domainerrors.ErrForbidden)
		m.ObserveCandidates([]entity.DuplicateCandidate{{DuplicateType: entity.DuplicateTypeExactAddress}})
		m.ObserveNotification(NotificationDead)
	})
}

func TestHandler(t *testing.T) {
	registry := NewRegistry()
	m := NewPipelineMetrics(registry, &config.Config{})
	m.ObserveNotification(NotificationDeferred)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "proptrust_notifications_total"))
}
