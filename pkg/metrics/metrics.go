package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration *prometheus.HistogramVec
	DBPoolOpenConns *prometheus.GaugeVec
	DBPoolIdleConns *prometheus.GaugeVec
	DBPoolInUse     *prometheus.GaugeVec

	// Business
	BookingsCreatedTotal *prometheus.CounterVec
	SlotConflictsTotal   *prometheus.CounterVec
	CheckInsTotal        *prometheus.CounterVec
	NoShowsSweptTotal    *prometheus.CounterVec
}

// New registers and returns the service metrics set on the default registry
func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		DBPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}, []string{"venue"}),

		SlotConflictsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Total number of booking attempts rejected due to a slot conflict",
			ConstLabels: constLabels,
		}, []string{"venue"}),

		CheckInsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_checkins_total",
			Help:        "Total number of successful check-ins",
			ConstLabels: constLabels,
		}, []string{"result"}),

		NoShowsSweptTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_no_shows_swept_total",
			Help:        "Total number of bookings marked no_show by the sweeper",
			ConstLabels: constLabels,
		}, []string{"trigger"}),
	}
}
