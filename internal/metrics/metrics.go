package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planzo_http_requests_total",
			Help: "Total HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planzo_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	guardDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planzo_guard_decisions_total",
			Help: "Route guard outcomes per role",
		},
		[]string{"role", "outcome"},
	)

	apiCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planzo_remote_api_calls_total",
			Help: "Calls made to the remote Planzo API",
		},
		[]string{"endpoint", "status"},
	)

	apiDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planzo_remote_api_call_duration_seconds",
			Help:    "Remote API call latency",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"endpoint"},
	)

	realtimeMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planzo_realtime_messages_total",
			Help: "Messages received on the realtime channel",
		},
		[]string{"transport", "event"},
	)
)

func ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func ObserveGuard(role, outcome string) {
	guardDecisions.WithLabelValues(role, outcome).Inc()
}

// ObserveAPICall records a remote call; status 0 means the request never got a response.
func ObserveAPICall(endpoint string, status int, duration time.Duration) {
	label := strconv.Itoa(status)
	if status == 0 {
		label = "error"
	}
	apiCalls.WithLabelValues(endpoint, label).Inc()
	apiDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func ObserveRealtime(transport, event string) {
	realtimeMessages.WithLabelValues(transport, event).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
