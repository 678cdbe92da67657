package middleware

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP and comment collectors of one registry.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	comments *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yanews",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "yanews",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		comments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yanews",
			Name:      "comment_events_total",
			Help:      "Comment writes by action (create, edit, delete, rejected).",
		}, []string{"action"}),
	}
	reg.MustRegister(m.requests, m.duration, m.comments)
	return m
}

// Middleware records count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// CommentEvent counts one comment action. A nil receiver is a no-op.
func (m *Metrics) CommentEvent(action string) {
	if m == nil {
		return
	}
	m.comments.WithLabelValues(action).Inc()
}

// CommentCounter reports the number of stored comments.
type CommentCounter func(ctx context.Context) (int64, error)

// RegisterCommentsGauge exposes the stored comment total, read at scrape time.
// A failed count is reported as NaN.
func RegisterCommentsGauge(reg prometheus.Registerer, count CommentCounter) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "yanews",
		Name:      "comments",
		Help:      "Comments currently stored.",
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := count(ctx)
		if err != nil {
			log.Printf("metrics: count comments: %v", err)
			return math.NaN()
		}
		return float64(n)
	}))
}

// Handler exposes the gatherer in the prometheus text format.
func Handler(g prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
