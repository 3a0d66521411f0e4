package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors used by the service.
// Label "service" carries the configured service name so several
// instances can share one Prometheus job.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbPoolOpenConns *prometheus.GaugeVec
	dbPoolIdleConns *prometheus.GaugeVec
	dbPoolInUse     *prometheus.GaugeVec

	clientRequestsTotal   *prometheus.CounterVec
	clientRequestDuration *prometheus.HistogramVec
}

// New registers and returns the service metrics set.
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"service", "method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request processing duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Open connections in the database pool",
		}, []string{"service"}),

		dbPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Idle connections in the database pool",
		}, []string{"service"}),

		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Connections currently in use",
		}, []string{"service"}),

		clientRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_api_requests_total",
			Help: "Total number of requests issued to the remote booking API",
		}, []string{"service", "operation", "status"}),

		clientRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booking_api_request_duration_seconds",
			Help:    "Remote booking API request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
	}

	// Pre-create the service-labelled pool gauges so dashboards see zeros
	// before the first scrape tick.
	m.dbPoolOpenConns.WithLabelValues(serviceName)
	m.dbPoolIdleConns.WithLabelValues(serviceName)
	m.dbPoolInUse.WithLabelValues(serviceName)

	return m
}

// ObserveHTTPRequest records one processed HTTP request.
func (m *Metrics) ObserveHTTPRequest(service, method, route, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery records one database query.
func (m *Metrics) ObserveDBQuery(service, operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats records the current connection pool state.
func (m *Metrics) SetDBPoolStats(service string, open, idle, inUse int) {
	m.dbPoolOpenConns.WithLabelValues(service).Set(float64(open))
	m.dbPoolIdleConns.WithLabelValues(service).Set(float64(idle))
	m.dbPoolInUse.WithLabelValues(service).Set(float64(inUse))
}

// ObserveClientRequest records one remote booking API call.
func (m *Metrics) ObserveClientRequest(service, operation, status string, duration time.Duration) {
	m.clientRequestsTotal.WithLabelValues(service, operation, status).Inc()
	m.clientRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}
