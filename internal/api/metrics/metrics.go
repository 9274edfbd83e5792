// Package metrics defines and registers all custom Prometheus metrics for
// the booking gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at package load;
// the router exposes them on /metrics alongside the standard HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking_gateway"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts against the upstream API.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts session validation outcomes.
// Label:
//   - result: "ok" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of session token validations, by result.",
	},
	[]string{"result"},
)

// LogoutNotifyFailuresTotal counts fire-and-forget logout notifications
// that could not be delivered upstream. Local logout succeeds regardless.
var LogoutNotifyFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logout_notify_failures_total",
		Help:      "Total number of upstream logout notifications that failed.",
	},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts requests sent to the upstream hotel API.
// Labels:
//   - endpoint: logical endpoint name (e.g. "rooms_available")
//   - status: HTTP status code, or "transport_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream API requests, by endpoint and status.",
	},
	[]string{"endpoint", "status"},
)

// UpstreamRequestDuration measures how long upstream requests take.
// Label:
//   - endpoint: logical endpoint name
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream API requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingCheckoutsTotal counts bookings handed off to the external payment
// checkout. Payment completion happens outside the gateway.
var BookingCheckoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_checkouts_total",
		Help:      "Total number of bookings handed off to payment checkout.",
	},
)
