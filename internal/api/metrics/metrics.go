// Package metrics defines and registers all custom Prometheus metrics for the
// staff portal. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login submissions by outcome.
// Label:
//   - result: "success", "invalid" (bad credentials), or "error" (store unreachable)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login submissions, by outcome.",
	},
	[]string{"result"},
)

// AuthDenialsTotal counts requests rejected by the authorization gate.
// Label:
//   - reason: "no_session" or "insufficient_role"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of protected requests denied, by reason.",
	},
	[]string{"reason"},
)

// SessionsCreatedTotal counts sessions issued after successful logins.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions issued.",
	},
)

// SessionsDestroyedTotal counts explicit logouts.
var SessionsDestroyedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_destroyed_total",
		Help:      "Total number of sessions destroyed by logout.",
	},
)

// UploadsTotal counts files stored through the admin upload page.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files stored via the admin upload page.",
	},
)
