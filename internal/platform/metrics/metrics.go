package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration prometheus.Histogram
	recordOps       *prometheus.CounterVec
	submitRejected  prometheus.Counter
	sessions        prometheus.Gauge
	sessionsSwept   prometheus.Counter
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "employeeform_http_requests_total",
			Help: "HTTP requests by status class.",
		}, []string{"class"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "employeeform_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}),
		recordOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "employeeform_record_operations_total",
			Help: "Record store operations by kind.",
		}, []string{"op"}),
		submitRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "employeeform_submit_rejected_total",
			Help: "Form submits blocked by validation.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "employeeform_sessions_active",
			Help: "Sessions currently held in memory.",
		}),
		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "employeeform_sessions_swept_total",
			Help: "Idle sessions removed by the sweeper.",
		}),
	}
	c.registry.MustRegister(
		c.requests,
		c.requestDuration,
		c.recordOps,
		c.submitRejected,
		c.sessions,
		c.sessionsSwept,
	)
	return c
}

func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(strconv.Itoa(status/100) + "xx").Inc()
	c.requestDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordOperation(op string) {
	if c == nil {
		return
	}
	c.recordOps.WithLabelValues(op).Inc()
}

func (c *Collector) SubmitRejected() {
	if c == nil {
		return
	}
	c.submitRejected.Inc()
}

func (c *Collector) SetSessions(n int) {
	if c == nil {
		return
	}
	c.sessions.Set(float64(n))
}

func (c *Collector) SessionsSwept(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.sessionsSwept.Add(float64(n))
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
