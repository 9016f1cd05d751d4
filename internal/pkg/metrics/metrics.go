// Package metrics exposes the Prometheus counters for form submissions,
// notification dispatch, logins and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for sendero_form_submissions_total.
const (
	OutcomeAccepted  = "accepted"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// Result labels for sendero_login_attempts_total.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

type Recorder interface {
	RecordSubmission(form, outcome string)
	RecordNotificationFailure(form string)
	RecordLogin(result string)
	RecordHTTPRequest(method, route string, status int, elapsed time.Duration)
}

type Collector struct {
	submissions          *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	logins               *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
	httpLatency          *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sendero_form_submissions_total",
			Help: "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sendero_notification_failures_total",
			Help: "Notification emails that could not be dispatched.",
		}, []string{"form"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sendero_login_attempts_total",
			Help: "Preview login attempts by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sendero_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sendero_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.submissions,
		c.notificationFailures,
		c.logins,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

func (c *Collector) RecordSubmission(form, outcome string) {
	c.submissions.WithLabelValues(form, outcome).Inc()
}

func (c *Collector) RecordNotificationFailure(form string) {
	c.notificationFailures.WithLabelValues(form).Inc()
}

func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything; for wiring tests that do not look at metrics.
type Nop struct{}

func (Nop) RecordSubmission(string, string)                      {}
func (Nop) RecordNotificationFailure(string)                     {}
func (Nop) RecordLogin(string)                                   {}
func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
