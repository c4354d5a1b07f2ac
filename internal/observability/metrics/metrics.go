package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_api_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_api_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	checkoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_api_checkouts_total",
		Help: "Count of checkout attempts by result",
	}, []string{"result"})

	storeLoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_api_store_logins_total",
		Help: "Count of store credential logins by result",
	}, []string{"result"})
)

// ObserveHTTPRequest registra contador y duración de una petición HTTP.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveCheckout incrementa el contador de checkouts por resultado
// (ok, insufficient_stock, item_not_found, error).
func ObserveCheckout(result string) {
	checkoutsTotal.WithLabelValues(result).Inc()
}

// ObserveStoreLogin incrementa el contador de logins de tienda por resultado
// (ok, invalid, error).
func ObserveStoreLogin(result string) {
	storeLoginsTotal.WithLabelValues(result).Inc()
}
