package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultLatencyBuckets covers fast reads up to a checkout that waited
// for the owner lock.
var DefaultLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// HTTPMetrics holds the per-route collectors fed by HTTPObs.
type HTTPMetrics struct {
	Requests      *prometheus.CounterVec
	Latency       *prometheus.HistogramVec
	ResponseBytes *prometheus.HistogramVec
	Active        prometheus.Gauge
}

// NewHTTPMetrics registers the HTTP collectors on reg under namespace.
// Registering twice on the same registry hands back the first set.
func NewHTTPMetrics(namespace string, buckets []float64, reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if len(buckets) == 0 {
		buckets = DefaultLatencyBuckets
	}
	m := &HTTPMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP handler latency in seconds.",
			Buckets:   buckets,
		}, []string{"method", "route"}),
		ResponseBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "Size of HTTP response bodies.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 7),
		}, []string{"route"}),
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served.",
		}),
	}
	m.Requests = registerCollector(reg, m.Requests)
	m.Latency = registerCollector(reg, m.Latency)
	m.ResponseBytes = registerCollector(reg, m.ResponseBytes)
	m.Active = registerCollector(reg, m.Active)
	return m
}

func (m *HTTPMetrics) observe(method, route string, status int, size int64, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.Latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
	m.ResponseBytes.WithLabelValues(route).Observe(float64(size))
}

// DurationMillis converts d to fractional milliseconds.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
