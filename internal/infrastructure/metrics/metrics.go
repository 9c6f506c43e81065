// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SalesSubmitted counts submit attempts that reached the sales service,
	// labelled by mode: create, create_pending or update.
	SalesSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_submitted_total",
		Help: "Sale submissions sent to the sales service",
	}, []string{"mode"})

	// SalesConfirmed counts confirmed sales, labelled by path: direct or pending.
	SalesConfirmed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_confirmed_total",
		Help: "Sales confirmed through this terminal service",
	}, []string{"path"})

	SalesAnnulled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_annulled_total",
		Help: "Sales annulled through this terminal service",
	})

	// UpstreamRequestDuration observes latency of calls to the remote
	// services, labelled by service and operation.
	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pos_upstream_request_duration_seconds",
		Help:    "Latency of upstream service calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "operation"})

	// HTTPRequests counts handled HTTP requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_http_requests_total",
		Help: "HTTP requests handled",
	}, []string{"method", "route", "status"})
)
