// Package metrics records Prometheus metrics for pxshot API calls.
//
// A Collector is optional; every method is a no-op on a nil *Collector so
// the client can call it unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeHTTP       = "http_error"
	OutcomeAPI        = "api_error"
	OutcomeError      = "error"
)

// Collector holds the client's Prometheus instruments
type Collector struct {
	// Requests counts finished operations by operation and outcome
	Requests *prometheus.CounterVec
	// Duration observes wall time of each operation, validation included
	Duration *prometheus.HistogramVec
	// ImageBytes counts inline screenshot bytes received
	ImageBytes prometheus.Counter
}

// NewCollector creates the instruments and registers them with reg. A nil
// reg registers with prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of pxshot API operations",
			},
			[]string{"operation", "outcome"},
		),

		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "pxshot API operation duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),

		ImageBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "screenshot_bytes_total",
				Help:      "Total bytes of screenshots returned inline",
			},
		),
	}
}

// ObserveRequest records one finished operation
func (c *Collector) ObserveRequest(operation, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Requests.WithLabelValues(operation, outcome).Inc()
	c.Duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// AddImageBytes records n bytes of inline image data
func (c *Collector) AddImageBytes(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.ImageBytes.Add(float64(n))
}
