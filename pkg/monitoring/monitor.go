package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	StageApprovals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stage_approvals_total",
			Help: "Stage approvals recorded, by program and stage",
		},
		[]string{"program", "stage"},
	)

	StageAdvances = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stage_advances_total",
			Help: "Stage advances applied, by program and stage moved into",
		},
		[]string{"program", "stage"},
	)

	VersionConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "progress_version_conflicts_total",
			Help: "Optimistic concurrency conflicts on student progress writes",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(StageApprovals)
	prometheus.MustRegister(StageAdvances)
	prometheus.MustRegister(VersionConflicts)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
