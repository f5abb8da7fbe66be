package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	runsTotal    *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	cacheTotal   *prometheus.CounterVec
	nextForecast *prometheus.GaugeVec
	runDuration  *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		runsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendcast_runs_total",
				Help: "Total number of forecast pipeline runs",
			},
			[]string{"source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendcast_errors_total",
				Help: "Total number of errors by class",
			},
			[]string{"type"},
		),
		cacheTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendcast_cache_requests_total",
				Help: "Forecast cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		nextForecast: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trendcast_next_forecast",
				Help: "First predicted value of the latest run",
			},
			[]string{"source"},
		),
		runDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendcast_run_duration_seconds",
				Help:    "Duration of forecast pipeline runs in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}

// RecordRun counts one pipeline run against a source.
func (r *Recorder) RecordRun(source string) {
	r.runsTotal.WithLabelValues(source).Inc()
}

// RecordError records an error occurrence by class.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheHit counts a cache lookup outcome.
func (r *Recorder) RecordCacheHit(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.cacheTotal.WithLabelValues(outcome).Inc()
}

// RecordNextForecast records the head of the latest forecast.
func (r *Recorder) RecordNextForecast(source string, value float64) {
	r.nextForecast.WithLabelValues(source).Set(value)
}

// RecordRunDuration records pipeline latency in seconds.
func (r *Recorder) RecordRunDuration(source string, seconds float64) {
	r.runDuration.WithLabelValues(source).Observe(seconds)
}
