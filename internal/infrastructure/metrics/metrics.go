// Package metrics exposes the raffle's Prometheus collectors on a private
// registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "raffle"

// Recorder owns every collector. It satisfies the metrics ports of the
// deposit, draw and notification use cases.
type Recorder struct {
	registry *prometheus.Registry

	depositsApproved prometheus.Counter
	depositsRejected prometheus.Counter
	ticketsAllocated prometheus.Counter
	draws            *prometheus.CounterVec
	notifications    *prometheus.CounterVec
	jobRuns          *prometheus.CounterVec

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		depositsApproved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposits_approved_total",
			Help:      "Deposits approved.",
		}),
		depositsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposits_rejected_total",
			Help:      "Deposits rejected.",
		}),
		ticketsAllocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_allocated_total",
			Help:      "Ticket numbers issued by approvals.",
		}),
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Draw attempts by result.",
		}, []string{"result"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "winner_notifications_total",
			Help:      "Winner notification attempts by status.",
		}, []string{"status"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Scheduled job runs.",
		}, []string{"job", "success"}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		r.depositsApproved,
		r.depositsRejected,
		r.ticketsAllocated,
		r.draws,
		r.notifications,
		r.jobRuns,
		r.httpInFlight,
		r.httpRequests,
		r.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return r
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) DepositApproved(tickets int) {
	r.depositsApproved.Inc()
	r.ticketsAllocated.Add(float64(tickets))
}

func (r *Recorder) DepositRejected() {
	r.depositsRejected.Inc()
}

func (r *Recorder) Draw(result string) {
	r.draws.WithLabelValues(result).Inc()
}

func (r *Recorder) WinnerNotification(status string) {
	r.notifications.WithLabelValues(status).Inc()
}

func (r *Recorder) JobRun(job string, success bool) {
	r.jobRuns.WithLabelValues(job, strconv.FormatBool(success)).Inc()
}

// TrackRequest increments the in-flight gauge and returns the function that
// records the finished request.
func (r *Recorder) TrackRequest(method, route string) func(status int) {
	start := time.Now()
	r.httpInFlight.Inc()
	return func(status int) {
		r.httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
