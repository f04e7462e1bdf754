package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several instances can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Lookups counts directory searches by kind and result (found, not_found).
	Lookups      *prometheus.CounterVec
	CheckIns     prometheus.Counter
	RateLimited  *prometheus.CounterVec
	CheckInsSeen prometheus.Counter

	// PublishFailures counts check-in events that could not be published.
	PublishFailures prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdesk_http_requests_total",
				Help: "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdesk_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"route", "method"},
		),
		Lookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdesk_lookups_total",
				Help: "Flight directory searches by kind and result",
			},
			[]string{"kind", "result"},
		),
		CheckIns: f.NewCounter(prometheus.CounterOpts{
			Name: "flightdesk_checkins_total",
			Help: "Check-ins completed by this instance",
		}),
		RateLimited: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdesk_rate_limited_total",
				Help: "Requests rejected by the rate limiter, by scope",
			},
			[]string{"scope"},
		),
		CheckInsSeen: f.NewCounter(prometheus.CounterOpts{
			Name: "flightdesk_checkins_observed_total",
			Help: "Check-in events received over pub/sub from any instance",
		}),
		PublishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "flightdesk_checkin_publish_failures_total",
			Help: "Check-in events that failed to publish",
		}),
	}
}

// ObserveLookup records one search outcome.
func (m *Metrics) ObserveLookup(kind string, found bool) {
	result := "not_found"
	if found {
		result = "found"
	}
	m.Lookups.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
