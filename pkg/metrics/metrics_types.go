package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the search process
type Registry struct {
	// Search Metrics
	StepsTotal          *prometheus.CounterVec
	MovesEvaluatedTotal *prometheus.CounterVec
	ImprovementsTotal   *prometheus.CounterVec
	StepDuration        *prometheus.HistogramVec
	BestScore           *prometheus.GaugeVec
	VisitedColorings    *prometheus.GaugeVec
	SearchesTotal       *prometheus.CounterVec
	SearchDuration      *prometheus.HistogramVec
	ActiveSearches      prometheus.Gauge

	// Persistence Metrics
	SavedColoringsTotal *prometheus.CounterVec

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initSearchMetrics()
	r.initPersistMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
