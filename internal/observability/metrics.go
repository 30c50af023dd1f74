// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the engine.
type Metrics struct {
	// Snapshot metrics
	SnapshotsBound prometheus.Counter

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Computation metrics
	AuctionPricesComputed prometheus.Counter
	YieldComputations     prometheus.Counter
	Recommendations       *prometheus.CounterVec // labeled by reason
	EvaluationDuration    prometheus.Histogram
}

// NewMetrics creates a Metrics instance with all metrics registered on reg.
// A nil reg uses the default registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "parcel_econ_lab"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		SnapshotsBound: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_bound_total",
			Help:      "Number of snapshots the engine has been bound to.",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Memoized computations served from the cache.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Computations that had to run because the cache missed.",
		}),
		AuctionPricesComputed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auction_prices_computed_total",
			Help:      "Auction decay prices computed.",
		}),
		YieldComputations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "yield_computations_total",
			Help:      "Neighbor yield aggregations computed.",
		}),
		Recommendations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Purchase recommendations produced, by reason.",
		}, []string{"reason"}),
		EvaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of full-parcel evaluations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
}
