package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "synop_encoder"

// Metrics holds the Prometheus counters, histograms, and gauges for the encoder service.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Encoding metrics.
	UnencodableRecords prometheus.Counter
	DurationIndicators *prometheus.CounterVec // labels: tr={0..9,/}
	EncodeRequests     *prometheus.CounterVec // labels: code={200,400,422}

	// Archive metrics.
	ArchiveWrites *prometheus.CounterVec // labels: outcome={success,error}
}

type metricOpts struct {
	batchSizeBuckets []float64
	durationBuckets  []float64
}

func newMetrics(opts metricOpts) *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total observation messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total encoded reports written to the sink.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total messages that could not be parsed or encoded.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   opts.batchSizeBuckets,
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-encode-load cycle.",
			Buckets:   opts.durationBuckets,
		}),
		UnencodableRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unencodable_records_total",
			Help:      "Observations refused because a required field was missing.",
		}),
		DurationIndicators: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "precipitation_duration_indicator_total",
			Help:      "Encoded reports by precipitation duration indicator (tR).",
		}, []string{"tr"}),
		EncodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "encode_requests_total",
			Help:      "HTTP encode requests by response code.",
		}, []string{"code"}),
		ArchiveWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_writes_total",
			Help:      "Report archive batch writes by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.UnencodableRecords,
		m.DurationIndicators,
		m.EncodeRequests,
		m.ArchiveWrites,
	}
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(metricOpts{
		batchSizeBuckets: []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		durationBuckets:  []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
	})
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics(metricOpts{
		batchSizeBuckets: prometheus.DefBuckets,
		durationBuckets:  prometheus.DefBuckets,
	})
}
