// Package metrics defines all custom Prometheus metrics for the marketplace
// API. It is the single source of truth for metric names, labels, and help
// strings; everything here registers with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// RegistrationsTotal counts created accounts.
// Label:
//   - kind: "user" or "client"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by variant.",
	},
	[]string{"kind"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "locked" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// GuardRedirectsTotal counts requests bounced by the access guards.
// Label:
//   - guard: "login" (not authenticated) or "admin" (wrong role)
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of requests redirected by an access guard.",
	},
	[]string{"guard"},
)

// AdminActionsTotal counts moderation operations that completed.
// Label:
//   - action: audit action tag (e.g. "user_banned", "client_status_changed")
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of administrative actions performed.",
	},
	[]string{"action"},
)

// ContactSubmissionsTotal counts stored contact-form submissions.
var ContactSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact form submissions stored.",
	},
)
