package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics はオーケストレーターの Prometheus メトリクスです。
type Metrics struct {
	records  *prometheus.CounterVec
	batches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics は reg にメトリクスを登録します。reg が nil の場合は専用のレジストリを使います。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		records: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asset_kit",
			Name:      "records_total",
			Help:      "Asset records processed, by outcome.",
		}, []string{"outcome"}),
		batches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asset_kit",
			Name:      "batches_total",
			Help:      "Batch runs finished, by kind.",
		}, []string{"kind"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "asset_kit",
			Name:      "record_duration_seconds",
			Help:      "Time spent enhancing and generating one asset.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 8),
		}, []string{"outcome"}),
	}
}

func (m *Metrics) observeRecord(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(seconds)
}

func (m *Metrics) observeBatch(kind string) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(kind).Inc()
}
