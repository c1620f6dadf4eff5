// Package metrics exposes pipeline counters to Prometheus.
package metrics

import (
	"net/http"

	"proptrust/config"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Notification delivery results.
const (
	NotificationDelivered = "delivered"
	NotificationRetried   = "retried"
	NotificationDead      = "dead"
	NotificationDeferred  = "deferred"
)

// PipelineMetrics counts verification transitions, duplicate matches and notification outcomes.
type PipelineMetrics struct {
	transitions        *prometheus.CounterVec
	transitionFailures *prometheus.CounterVec
	duplicateMatches   *prometheus.CounterVec
	notifications      *prometheus.CounterVec
}

// NewRegistry creates the registry served on /metrics, with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewPipelineMetrics registers the pipeline counters on the registry.
func NewPipelineMetrics(registry *prometheus.Registry, cfg *config.Config) *PipelineMetrics {
	serviceName := cfg.Env.ServiceName
	if serviceName == "" {
		serviceName = "proptrust"
	}
	environment := cfg.Env.Env
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &PipelineMetrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "proptrust_listing_transitions_total",
			Help:        "Accepted listing transitions by action and status pair.",
			ConstLabels: constLabels,
		}, []string{"action", "from", "to"}),
		transitionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "proptrust_listing_transition_failures_total",
			Help:        "Rejected pipeline operations by error kind.",
			ConstLabels: constLabels,
		}, []string{"operation", "kind"}),
		duplicateMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "proptrust_duplicate_candidates_total",
			Help:        "Duplicate candidates found by match type.",
			ConstLabels: constLabels,
		}, []string{"type"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "proptrust_notifications_total",
			Help:        "Outbox notification delivery attempts by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	registry.MustRegister(m.transitions, m.transitionFailures, m.duplicateMatches, m.notifications)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// ObserveTransition counts an accepted transition.
func (m *PipelineMetrics) ObserveTransition(action entity.AuditAction, from, to entity.ListingStatus) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(string(action), string(from), string(to)).Inc()
}

// ObserveFailure counts a rejected operation under its error kind.
func (m *PipelineMetrics) ObserveFailure(operation string, err error) {
	if m == nil || err == nil {
		return
	}
	m.transitionFailures.WithLabelValues(operation, string(domainerrors.KindOf(err))).Inc()
}

// ObserveCandidates counts the candidates of one matcher run.
func (m *PipelineMetrics) ObserveCandidates(candidates []entity.DuplicateCandidate) {
	if m == nil {
		return
	}
	for _, c := range candidates {
		m.duplicateMatches.WithLabelValues(string(c.DuplicateType)).Inc()
	}
}

// ObserveNotification counts one delivery attempt.
func (m *PipelineMetrics) ObserveNotification(result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(result).Inc()
}
