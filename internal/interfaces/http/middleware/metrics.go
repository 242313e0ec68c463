package middleware

import (
	"strconv"
	"time"

	"github.com/bizdesk/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetricsConfig selects where request metrics are recorded
type HTTPMetricsConfig struct {
	// Registerer receives the Prometheus collectors. nil skips Prometheus.
	Registerer prometheus.Registerer
	// Meter records the same measurements over OTLP. nil skips OTLP.
	Meter metric.Meter
	// SkipPaths are not measured, e.g. the scrape endpoint itself.
	SkipPaths []string
}

type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge

	otelRequests metric.Int64Counter
	otelDuration metric.Float64Histogram
}

// HTTPMetrics counts requests and observes latency by method, route and
// status. Unmatched routes share the "unmatched" label.
func HTTPMetrics(cfg HTTPMetricsConfig) (gin.HandlerFunc, error) {
	m := &httpMetrics{}
	if cfg.Registerer != nil {
		factory := promauto.With(cfg.Registerer)
		labels := []string{"method", "route", "status"}
		m.requests = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bizdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels)
		m.duration = factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bizdesk_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: telemetry.HTTPDurationBuckets,
		}, labels)
		m.inFlight = factory.NewGauge(prometheus.GaugeOpts{
			Name: "bizdesk_http_requests_in_flight",
			Help: "Requests currently being served",
		})
	}
	if cfg.Meter != nil {
		var err error
		m.otelRequests, err = cfg.Meter.Int64Counter("http_server_request_total",
			metric.WithDescription("Total number of HTTP requests"),
			metric.WithUnit("{request}"))
		if err != nil {
			return nil, err
		}
		m.otelDuration, err = cfg.Meter.Float64Histogram("http_server_request_duration_seconds",
			metric.WithDescription("HTTP request latency"),
			metric.WithUnit("s"),
			metric.WithExplicitBucketBoundaries(telemetry.HTTPDurationBuckets...))
		if err != nil {
			return nil, err
		}
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		start := time.Now()
		if m.inFlight != nil {
			m.inFlight.Inc()
			defer m.inFlight.Dec()
		}

		c.Next()

		m.observe(c, time.Since(start))
	}, nil
}

func (m *httpMetrics) observe(c *gin.Context, elapsed time.Duration) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method
	status := strconv.Itoa(c.Writer.Status())

	if m.requests != nil {
		m.requests.WithLabelValues(method, route, status).Inc()
		m.duration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
	}
	if m.otelRequests != nil {
		attrs := metric.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", route),
			attribute.String("http.status_code", status),
		)
		ctx := c.Request.Context()
		m.otelRequests.Add(ctx, 1, attrs)
		m.otelDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
