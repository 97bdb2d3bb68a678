// Package metrics defines and registers the custom Prometheus metrics of the
// storefront. HTTP request metrics come from the echoprometheus middleware;
// this package only holds domain counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Storage ───────────────────────────────────────────────────────────────────

// StorageErrorsTotal counts record store failures that were absorbed.
// Labels:
//   - collection: "users", "products" or "orders"
//   - op: "load", "decode", "validate", "encode" or "save"
var StorageErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_errors_total",
		Help:      "Total number of record store failures absorbed instead of returned.",
	},
	[]string{"collection", "op"},
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered users, by role.",
	},
	[]string{"role"},
)

// ── Checkout ──────────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders appended by checkout.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created by checkout.",
	},
)

// CheckoutFailuresTotal counts rejected checkouts.
// Label:
//   - reason: "no_valid_products" or "unauthenticated"
var CheckoutFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_failures_total",
		Help:      "Total number of checkouts rejected before an order was written.",
	},
	[]string{"reason"},
)

// CheckoutAmount observes order totals.
var CheckoutAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_amount",
		Help:      "Distribution of order totals.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	},
)
