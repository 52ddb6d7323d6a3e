package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RouteRequestsTotal counts route requests by outcome ("ok" or an error code).
	RouteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walkrouter_route_requests_total",
			Help: "Total number of route requests processed",
		},
		[]string{"outcome"},
	)

	// RouteDurationSeconds tracks time spent answering route requests.
	RouteDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "walkrouter_route_duration_seconds",
			Help:    "Time spent computing routes",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	// RouteSettledVertices tracks how many vertices each search finalized.
	RouteSettledVertices = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "walkrouter_route_settled_vertices",
			Help:    "Vertices finalized per shortest-path search",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
	)
)

func init() {
	// Register metrics with the default registry
	prometheus.MustRegister(RouteRequestsTotal)
	prometheus.MustRegister(RouteDurationSeconds)
	prometheus.MustRegister(RouteSettledVertices)
}
