// Package metrics collects Prometheus metrics for the API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	events   *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devconnector_http_requests_total",
			Help: "HTTP responses by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "devconnector_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devconnector_domain_events_total",
			Help: "Successful domain mutations such as post_created or post_liked.",
		}, []string{"event"}),
	}
	reg.MustRegister(c.requests, c.latency, c.events)
	return c
}

func (c *Collector) RecordRequest(method, route string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Inc counts one domain event.
func (c *Collector) Inc(event string) {
	c.events.WithLabelValues(event).Inc()
}

// Handler serves the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
