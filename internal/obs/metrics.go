// Package obs exposes Prometheus metrics for outbound API traffic.
package obs

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusNetworkError labels requests that never produced a response.
const StatusNetworkError = "network_error"

// Metrics owns a private registry so several clients (and tests) can coexist
// in one process without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	inFlight prometheus.Gauge
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "brewkeeper_api_in_flight_requests",
			Help: "In-flight requests to the recipe API.",
		}),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brewkeeper_api_requests_total",
			Help: "Total number of requests to the recipe API.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brewkeeper_api_request_duration_seconds",
			Help:    "Recipe API request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
	m.registry.MustRegister(m.inFlight, m.total, m.duration)
	return m
}

// Registry is exposed for extra collectors such as build info.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentRoundTripper wraps next (http.DefaultTransport when nil) so every
// request is counted and timed under its canonical path.
func (m *Metrics) InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		path := CanonicalPath(r.URL.Path)

		m.inFlight.Inc()
		defer m.inFlight.Dec()
		start := time.Now()

		resp, err := next.RoundTrip(r)

		status := StatusNetworkError
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		m.duration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		m.total.WithLabelValues(r.Method, path, status).Inc()
		return resp, err
	})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// CanonicalPath collapses recipe ids and usernames so label cardinality
// stays bounded.
func CanonicalPath(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	parts := strings.Split(strings.Trim(p, "/"), "/")
	switch parts[0] {
	case "recipies", "recipie":
		if len(parts) >= 2 {
			parts[1] = ":id"
		}
		if len(parts) == 4 && parts[2] == "notes" {
			parts[3] = ":index"
		}
	case "users":
		if len(parts) >= 2 {
			parts[1] = ":username"
		}
	case "admin":
		if len(parts) == 3 && parts[1] == "recipes" {
			parts[2] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
