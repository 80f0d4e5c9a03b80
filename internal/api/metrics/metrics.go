// Package metrics defines and registers all custom Prometheus metrics for
// the GymTech dashboard. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymdash"

// GatewayRequestsTotal counts calls issued to the remote gym API.
// Labels:
//   - group: the domain group that issued the call (e.g. "member", "chat")
//   - outcome: "ok" or "error"
var GatewayRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of upstream gym API calls, by domain group and outcome.",
	},
	[]string{"group", "outcome"},
)

// GatewayRequestDuration measures upstream call latency per domain group.
var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of upstream gym API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"group"},
)

// LoginsTotal counts credential exchanges.
// Label:
//   - outcome: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ChatMessagesTotal counts chat exchanges forwarded to the assistant.
// Label:
//   - role: the dashboard role that sent the message (lowercased)
var ChatMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "Total number of chat messages forwarded to the assistant.",
	},
	[]string{"role"},
)
