// Package metrics exposes engine counters and distributions to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests and multiple servers never
// collide on the global one.
type Collector struct {
	registry              *prometheus.Registry
	messagesParsed        prometheus.Counter
	transactionsExtracted *prometheus.CounterVec
	profilesBuilt         prometheus.Counter
	profileBuildDuration  prometheus.Histogram
	creditScores          prometheus.Histogram
	safeRepayments        prometheus.Histogram
	stateStoreErrors      prometheus.Counter
	expiredStatesDeleted  prometheus.Counter
}

// NewCollector registers all engine metrics on a fresh registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		messagesParsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "creditgo",
			Name:      "sms_messages_parsed_total",
			Help:      "Raw messages fed to the transaction parser",
		}),
		transactionsExtracted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "creditgo",
			Name:      "transactions_extracted_total",
			Help:      "Transactions extracted from messages, by type",
		}, []string{"type"}),
		profilesBuilt: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "creditgo",
			Name:      "profiles_built_total",
			Help:      "Financial profiles computed",
		}),
		profileBuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "creditgo",
			Name:      "profile_build_duration_seconds",
			Help:      "Time taken to parse, analyze and build a profile",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		creditScores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "creditgo",
			Name:      "credit_score_distribution",
			Help:      "Distribution of computed credit scores",
			Buckets:   []float64{0, 20, 40, 55, 70, 85, 100},
		}),
		safeRepayments: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "creditgo",
			Name:      "safe_monthly_repayment_naira",
			Help:      "Distribution of safe monthly repayment amounts",
			Buckets:   []float64{5000, 10000, 25000, 50000, 100000, 250000, 500000},
		}),
		stateStoreErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "creditgo",
			Name:      "state_store_errors_total",
			Help:      "Failed reads or writes against the app state store",
		}),
		expiredStatesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "creditgo",
			Name:      "expired_states_deleted_total",
			Help:      "App state entries removed by the cleanup job",
		}),
	}
}

// RecordParse counts one parser run over n messages
func (c *Collector) RecordParse(messages, credits, debits int) {
	c.messagesParsed.Add(float64(messages))
	c.transactionsExtracted.WithLabelValues("credit").Add(float64(credits))
	c.transactionsExtracted.WithLabelValues("debit").Add(float64(debits))
}

// RecordProfile records a computed profile
func (c *Collector) RecordProfile(score int, safeRepayment float64, duration time.Duration) {
	c.profilesBuilt.Inc()
	c.creditScores.Observe(float64(score))
	c.safeRepayments.Observe(safeRepayment)
	c.profileBuildDuration.Observe(duration.Seconds())
}

// RecordStoreError counts a failed state store operation
func (c *Collector) RecordStoreError() {
	c.stateStoreErrors.Inc()
}

// RecordExpiredDeleted counts state entries purged by cleanup
func (c *Collector) RecordExpiredDeleted(n int64) {
	c.expiredStatesDeleted.Add(float64(n))
}

// Registry exposes the underlying registry, e.g. to add process collectors
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
