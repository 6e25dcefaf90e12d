// Package metrics defines the Prometheus counters of the registration service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registration outcomes used as the "outcome" label.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing, which keeps tests that do not
// care about metrics free of setup.
type Metrics struct {
	Registrations     *prometheus.CounterVec
	LogWriteFailures  prometheus.Counter
	DonationsReceived *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in main and a fresh
// prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "garden_registrations_total",
			Help: "Registration attempts by outcome",
		}, []string{"outcome"}),
		LogWriteFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "garden_log_write_failures_total",
			Help: "Appointment log writes that failed",
		}),
		DonationsReceived: f.NewCounterVec(prometheus.CounterOpts{
			Name: "garden_donations_total",
			Help: "Donations recorded by kind",
		}, []string{"kind"}),
	}
}

// RecordRegistration counts one registration attempt.
func (m *Metrics) RecordRegistration(outcome string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(outcome).Inc()
}

// RecordLogWriteFailure counts one failed appointment log write.
func (m *Metrics) RecordLogWriteFailure() {
	if m == nil {
		return
	}
	m.LogWriteFailures.Inc()
}

// RecordDonation counts one donation of the given kind.
func (m *Metrics) RecordDonation(kind string) {
	if m == nil {
		return
	}
	m.DonationsReceived.WithLabelValues(kind).Inc()
}
