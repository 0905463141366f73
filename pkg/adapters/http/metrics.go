package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service counters.
type Metrics struct {
	requests    *prometheus.CounterVec
	validations *prometheus.CounterVec
}

// NewMetrics registers the service counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skooma_http_requests_total",
			Help: "HTTP requests handled, by method and status class.",
		}, []string{"method", "status"}),
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skooma_validations_total",
			Help: "Table validations performed, by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) observeValidation(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.validations.WithLabelValues(result).Inc()
}

// middleware counts every request by method and status class.
func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.requests.WithLabelValues(r.Method, statusClass(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
