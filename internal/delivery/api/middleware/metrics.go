package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request counters, latency and in-flight gauges.
type MetricsMiddleware struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight *prometheus.GaugeVec
}

// NewMetricsMiddleware registers the HTTP collectors on a dedicated registry.
func NewMetricsMiddleware() (*MetricsMiddleware, error) {
	m := &MetricsMiddleware{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of processed requests",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests in flight by method and route",
		}, []string{"method", "path"}),
	}

	for _, collector := range []prometheus.Collector{
		m.requests,
		m.duration,
		m.inflight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registerCollector(m.registry, collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handle instruments the request using the matched route template as the path label.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		method := strings.ToUpper(c.Request().Method)
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		m.inflight.WithLabelValues(method, path).Inc()
		start := time.Now()

		err := next(c)

		m.inflight.WithLabelValues(method, path).Dec()
		m.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		status := c.Response().Status
		if err != nil {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else if !c.Response().Committed {
				status = http.StatusInternalServerError
			}
		}
		m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()

		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *MetricsMiddleware) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// registerCollector ignores collectors that are already registered.
func registerCollector(reg prometheus.Registerer, collector prometheus.Collector) error {
	if err := reg.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return nil
		}

		return errors.Wrap(err, "register collector")
	}

	return nil
}
