// Package metrics provides Prometheus metrics for RadioAI.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radioai",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "radioai",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// NarrationsTotal counts audio requests by cache outcome.
	NarrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radioai",
			Name:      "narrations_total",
			Help:      "Total number of article narrations by result",
		},
		[]string{"result"},
	)

	// AIRequestsTotal counts calls to the AI provider.
	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radioai",
			Name:      "ai_requests_total",
			Help:      "Total number of AI provider requests",
		},
		[]string{"operation", "status"},
	)

	// AIRequestDuration measures AI provider latency.
	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "radioai",
			Name:      "ai_request_duration_seconds",
			Help:      "Duration of AI provider requests in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation"},
	)

	// IngestedArticlesTotal counts articles created from feeds.
	IngestedArticlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radioai",
			Name:      "ingested_articles_total",
			Help:      "Total number of articles ingested from feeds",
		},
		[]string{"source"},
	)
)

const (
	NarrationHit   = "hit"
	NarrationMiss  = "miss"
	NarrationError = "error"
)

// RecordNarration records the outcome of an audio request.
func RecordNarration(result string) {
	NarrationsTotal.WithLabelValues(result).Inc()
}

// RecordAIRequest records an AI provider call.
func RecordAIRequest(operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	AIRequestsTotal.WithLabelValues(operation, status).Inc()
	AIRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordIngested records articles created from a feed source.
func RecordIngested(source string, count int) {
	IngestedArticlesTotal.WithLabelValues(source).Add(float64(count))
}

// Middleware records request counts and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
