package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMiddleware is a middleware that records Prometheus metrics for HTTP requests.
type PrometheusMiddleware struct {
	totalRequests   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
	inFlight        prometheus.Gauge

	router *mux.Router
}

// NewPrometheusMiddleware registers the HTTP metrics with reg.
func NewPrometheusMiddleware(reg prometheus.Registerer) *PrometheusMiddleware {
	factory := promauto.With(reg)
	m := &PrometheusMiddleware{
		totalRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		responseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes.",
				Buckets: prometheus.ExponentialBuckets(64, 4, 8),
			},
			[]string{"method", "path", "status"},
		),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
	}
	return m
}

// ForRouter lets Instrument wrap the whole router, so 404, 405 and 429
// responses are counted too. Routes are resolved with router.Match.
func (m *PrometheusMiddleware) ForRouter(r *mux.Router) *PrometheusMiddleware {
	m.router = r
	return m
}

// Instrument is the HTTP middleware function. Paths are labelled by route
// template so prompt ids and blog slugs do not explode label cardinality;
// requests that match no route share the "unmatched" label.
func (m *PrometheusMiddleware) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		statusCode := strconv.Itoa(rec.Status())
		path := m.routeTemplate(r)
		method := r.Method

		m.totalRequests.WithLabelValues(method, path, statusCode).Inc()
		m.requestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		m.responseSize.WithLabelValues(method, path, statusCode).Observe(float64(rec.size))
	})
}

const unmatchedRoute = "unmatched"

func (m *PrometheusMiddleware) routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil && m.router != nil {
		var match mux.RouteMatch
		if m.router.Match(r, &match) && match.MatchErr == nil {
			route = match.Route
		}
	}
	if route == nil {
		return unmatchedRoute
	}
	if tmpl, err := route.GetPathTemplate(); err == nil {
		return tmpl
	}
	return unmatchedRoute
}
