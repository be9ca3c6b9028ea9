// Package metrics exposes the bridge's Prometheus instrumentation. It wraps
// a private registry rather than the global default so tests can construct
// an isolated Registry without colliding with other packages' metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles every counter/gauge/histogram the daemon exports.
type Registry struct {
	reg *prometheus.Registry

	MessagesIngested *prometheus.CounterVec
	BusEventsDropped prometheus.Counter
	UnreadCount      *prometheus.GaugeVec
	GRPCDuration     *prometheus.HistogramVec
}

// New builds a Registry with every metric registered and ready to observe.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		MessagesIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_messages_ingested_total",
			Help: "Inbound messages processed by the WhatsApp session service, by outcome.",
		}, []string{"outcome"}),
		BusEventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bridge_bus_events_dropped_total",
			Help: "Events dropped because a subscriber's channel was full.",
		}),
		UnreadCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bridge_unread_count",
			Help: "Last known unread count per chat.",
		}, []string{"chat"}),
		GRPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bridge_grpc_request_duration_seconds",
			Help:    "RPC handler latency by method and result code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}

	reg.MustRegister(r.MessagesIngested, r.BusEventsDropped, r.UnreadCount, r.GRPCDuration)
	return r
}

// Handler returns the HTTP handler to mount at GET /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
