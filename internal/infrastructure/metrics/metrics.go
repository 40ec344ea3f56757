package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the reporting pipeline.
type Metrics struct {
	// Pipeline metrics
	PipelineBuilds   *prometheus.CounterVec
	PipelineDuration prometheus.Histogram

	// Dataset cache metrics
	DatasetCacheHits   prometheus.Counter
	DatasetCacheMisses prometheus.Counter
	DatasetRecords     prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		PipelineBuilds: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paydash_pipeline_builds_total",
				Help: "Total report pipeline runs by result",
			},
			[]string{"result"},
		),
		PipelineDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "paydash_pipeline_duration_seconds",
			Help:    "Duration of report pipeline runs",
			Buckets: prometheus.DefBuckets,
		}),
		DatasetCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paydash_dataset_cache_hits_total",
			Help: "Total dataset cache hits",
		}),
		DatasetCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paydash_dataset_cache_misses_total",
			Help: "Total dataset cache misses (each miss is a full upstream fetch)",
		}),
		DatasetRecords: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "paydash_dataset_records",
			Help: "Record count of the most recently reconciled dataset",
		}),
	}
}

// ObserveBuild records one pipeline run.
func (m *Metrics) ObserveBuild(duration time.Duration, result string) {
	m.PipelineBuilds.WithLabelValues(result).Inc()
	m.PipelineDuration.Observe(duration.Seconds())
}

// CacheHit records a dataset cache hit.
func (m *Metrics) CacheHit() {
	m.DatasetCacheHits.Inc()
}

// CacheMiss records a dataset cache miss.
func (m *Metrics) CacheMiss() {
	m.DatasetCacheMisses.Inc()
}

// DatasetSize records the size of a freshly reconciled dataset.
func (m *Metrics) DatasetSize(records int) {
	m.DatasetRecords.Set(float64(records))
}
