// Package metrics defines the Prometheus collectors for account and project
// operations. It is the single source of truth for metric names, labels and
// help strings.
//
// Collectors are registered on the Registerer passed to New so each store
// and service graph (and each test) can own an isolated registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// Result label values shared by the outcome counters.
const (
	ResultOK            = "ok"
	ResultNotFound      = "not_found"
	ResultForbidden     = "forbidden"
	ResultWrongPassword = "wrong_password"
	ResultRejected      = "rejected"
)

// Metrics bundles every collector. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	// AccountsRegistered counts successful registrations.
	// Label:
	//   - role: "manager" or "builder"
	AccountsRegistered *prometheus.CounterVec

	// RegistrationConflicts counts registrations rejected for a taken email.
	RegistrationConflicts prometheus.Counter

	// Logins counts authentication attempts.
	// Label:
	//   - result: "ok", "not_found" or "wrong_password"
	Logins *prometheus.CounterVec

	// ProjectsCreated counts created projects.
	ProjectsCreated prometheus.Counter

	// StatusUpdates counts status update attempts.
	// Label:
	//   - result: "ok", "not_found", "forbidden" or "rejected" (unknown status)
	StatusUpdates *prometheus.CounterVec

	// Deletions counts project delete attempts.
	// Label:
	//   - result: "ok", "not_found" or "forbidden"
	Deletions *prometheus.CounterVec
}

// New creates all collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AccountsRegistered: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_registered_total",
				Help:      "Total number of registered users, by role.",
			},
			[]string{"role"},
		),
		RegistrationConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_registration_conflicts_total",
			Help:      "Total number of registrations rejected because the email was already taken.",
		}),
		Logins: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Total number of authentication attempts, by result.",
			},
			[]string{"result"},
		),
		ProjectsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projects_created_total",
			Help:      "Total number of projects created.",
		}),
		StatusUpdates: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "project_status_updates_total",
				Help:      "Total number of project status update attempts, by result.",
			},
			[]string{"result"},
		),
		Deletions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "project_deletions_total",
				Help:      "Total number of project delete attempts, by result.",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) ObserveRegistration(role string) {
	if m == nil {
		return
	}
	m.AccountsRegistered.WithLabelValues(role).Inc()
}

func (m *Metrics) ObserveRegistrationConflict() {
	if m == nil {
		return
	}
	m.RegistrationConflicts.Inc()
}

func (m *Metrics) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveProjectCreated() {
	if m == nil {
		return
	}
	m.ProjectsCreated.Inc()
}

func (m *Metrics) ObserveStatusUpdate(result string) {
	if m == nil {
		return
	}
	m.StatusUpdates.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDeletion(result string) {
	if m == nil {
		return
	}
	m.Deletions.WithLabelValues(result).Inc()
}
