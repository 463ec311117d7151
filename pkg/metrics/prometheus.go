// Package metrics provides Prometheus metrics for the hardcard toolkit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the toolkit.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Matching and analysis
	layerMatches    *prometheus.CounterVec
	layersUnmatched prometheus.Counter
	recommendations *prometheus.CounterVec
	analysisLatency prometheus.Histogram

	// Document mutation
	expressionsWritten  prometheus.Counter
	expressionsRemoved  prometheus.Counter
	validationFailures  prometheus.Counter
	documentsProcessed  *prometheus.CounterVec
	batchWorkersActive  prometheus.Gauge
	batchFileLatency    prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking
	errorRateByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hardcard",
		subsystem:        "toolkit",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.layerMatches = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("layer_matches_total"),
			Help:        "Total number of layers matched to a variable by strategy",
			ConstLabels: labels,
		},
		[]string{"strategy"},
	)

	m.layersUnmatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("layers_unmatched_total"),
		Help:        "Total number of layers no strategy could match",
		ConstLabels: labels,
	})

	m.recommendations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("recommendations_total"),
			Help:        "Total number of recommendations kept by confidence bucket",
			ConstLabels: labels,
		},
		[]string{"bucket"},
	)

	m.analysisLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("analysis_latency_milliseconds"),
		Help:        "Histogram of document analysis latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.expressionsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("expressions_written_total"),
		Help:        "Total number of expressions written into documents",
		ConstLabels: labels,
	})

	m.expressionsRemoved = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("expressions_removed_total"),
		Help:        "Total number of expressions removed from documents",
		ConstLabels: labels,
	})

	m.validationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("validation_failures_total"),
		Help:        "Total number of expressions rejected by the syntax check",
		ConstLabels: labels,
	})

	m.documentsProcessed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("documents_processed_total"),
			Help:        "Total number of documents processed by outcome",
			ConstLabels: labels,
		},
		[]string{"outcome"},
	)

	m.batchWorkersActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("batch_workers_active"),
		Help:        "Number of batch workers currently processing a document",
		ConstLabels: labels,
	})

	m.batchFileLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("batch_file_latency_milliseconds"),
		Help:        "Per-document processing latency inside a batch in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_requests_total"),
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_request_duration_milliseconds"),
			Help:        "HTTP request duration in milliseconds (user experience)",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_component_total"),
			Help:        "Total number of errors by component",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)
}

// RecordLayerMatch counts a layer matched by strategy.
func RecordLayerMatch(strategy string) {
	if !globalManager.enabled {
		return
	}
	globalManager.layerMatches.WithLabelValues(strategy).Inc()
}

// RecordLayerUnmatched counts a layer no strategy matched.
func RecordLayerUnmatched() {
	if !globalManager.enabled {
		return
	}
	globalManager.layersUnmatched.Inc()
}

// RecordRecommendation counts a kept recommendation by bucket.
func RecordRecommendation(bucket string) {
	if !globalManager.enabled {
		return
	}
	globalManager.recommendations.WithLabelValues(bucket).Inc()
}

// RecordAnalysisLatency records analysis latency in milliseconds.
func RecordAnalysisLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.analysisLatency.Observe(latencyMs)
}

// RecordExpressionWritten increments the written expressions counter.
func RecordExpressionWritten() {
	if !globalManager.enabled {
		return
	}
	globalManager.expressionsWritten.Inc()
}

// RecordExpressionRemoved increments the removed expressions counter.
func RecordExpressionRemoved() {
	if !globalManager.enabled {
		return
	}
	globalManager.expressionsRemoved.Inc()
}

// RecordValidationFailure increments the rejected expressions counter.
func RecordValidationFailure() {
	if !globalManager.enabled {
		return
	}
	globalManager.validationFailures.Inc()
}

// RecordDocumentProcessed counts a processed document by outcome ("ok", "error").
func RecordDocumentProcessed(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.documentsProcessed.WithLabelValues(outcome).Inc()
}

// AddBatchWorkersActive adjusts the active batch worker gauge by delta.
func AddBatchWorkersActive(delta int) {
	if !globalManager.enabled {
		return
	}
	globalManager.batchWorkersActive.Add(float64(delta))
}

// RecordBatchFileLatency records per-document batch latency in milliseconds.
func RecordBatchFileLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.batchFileLatency.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// SetEnabled turns recording through the package functions on or off.
func SetEnabled(enabled bool) {
	globalManager.enabled = enabled
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
