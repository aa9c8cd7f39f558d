// Package metrics defines and registers all custom Prometheus metrics for
// the store rating API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store_rating"

// SignupsTotal counts account self-registrations.
// Labels:
//   - role: the role granted to the new account ("user" or "owner")
//   - result: "ok", "rejected" (validation or duplicate email), or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "ok", "rejected", "throttled", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RatingsSubmittedTotal counts rating submissions.
// Label:
//   - result: "created" (first rating), "updated" (overwrite), "rejected", or "error"
var RatingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of rating submissions, by result.",
	},
	[]string{"result"},
)
