// Package metrics records application events as Prometheus counters.
package metrics

import (
	"context"

	"github.com/forgo/volunteer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "volunteer"

// ApplicationMetrics counts applications and their status changes. It is
// registered with the application service as an observer.
type ApplicationMetrics struct {
	Created       *prometheus.CounterVec
	StatusChanges *prometheus.CounterVec
}

// NewApplicationMetrics creates and registers application metrics on the given registry.
func NewApplicationMetrics(reg prometheus.Registerer) *ApplicationMetrics {
	m := &ApplicationMetrics{
		Created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_created_total",
			Help:      "Total number of applications filed, by opportunity interest.",
		}, []string{"interest"}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "application_status_changes_total",
			Help:      "Total number of application status updates, by old and new status.",
		}, []string{"from", "to"}),
	}

	reg.MustRegister(m.Created, m.StatusChanges)
	return m
}

// OnApplicationCreated increments the created counter for the opportunity's interest
func (m *ApplicationMetrics) OnApplicationCreated(_ context.Context, application *model.Application) {
	interest := ""
	if application.Opportunity != nil {
		interest = application.Opportunity.Interest
	}
	m.Created.WithLabelValues(interest).Inc()
}

// OnApplicationStatusChanged increments the status change counter
func (m *ApplicationMetrics) OnApplicationStatusChanged(_ context.Context, _ *model.Application, oldStatus, newStatus string) {
	m.StatusChanges.WithLabelValues(oldStatus, newStatus).Inc()
}
