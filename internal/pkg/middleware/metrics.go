package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder produces a gin middleware that records per-route request
// durations and counts under the given namespace. Metrics are served by the
// governor endpoint.
type MetricsBuilder struct {
	namespace string
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return &MetricsBuilder{namespace: namespace}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	labels := []string{"method", "path", "status_code"}
	duration := promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.95: 0.005,
			0.99: 0.001,
		},
	}, labels)
	total := promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)

	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		// Unmatched routes fall back to the raw path so 404 noise stays visible.
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		method := ctx.Request.Method
		status := strconv.Itoa(ctx.Writer.Status())

		duration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		total.WithLabelValues(method, path, status).Inc()
	}
}
