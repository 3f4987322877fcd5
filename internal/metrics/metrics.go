// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "Total number of HTTP requests processed.",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricHTTPRequestDuration,
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	// PurchasesSettledTotal counts successful settlements by entry kind.
	PurchasesSettledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricPurchasesSettledTotal,
			Help: "Total number of purchases settled successfully.",
		},
		[]string{LabelKind},
	)

	// PurchaseFailuresTotal counts failed settlements by reason.
	PurchaseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricPurchaseFailuresTotal,
			Help: "Total number of purchase attempts that did not settle.",
		},
		[]string{LabelReason},
	)

	// CurrencySpentTotal sums settled debits by currency.
	CurrencySpentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricCurrencySpentTotal,
			Help: "Total currency units debited through settlements.",
		},
		[]string{LabelCurrency},
	)

	// AttributeAdjustmentsTotal counts attribute writes by outcome.
	AttributeAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricAttributeAdjustmentsTotal,
			Help: "Total number of attribute adjustment attempts.",
		},
		[]string{LabelOutcome},
	)

	// PlayersRegisteredTotal counts new player registrations.
	PlayersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricPlayersRegisteredTotal,
			Help: "Total number of players registered.",
		},
	)
)
