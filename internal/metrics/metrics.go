package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barbershop_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_bookings_total",
			Help: "Total number of booking requests by outcome",
		},
		[]string{"status"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barbershop_booking_conflicts_total",
			Help: "Total number of bookings rejected because the slot was taken",
		},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barbershop_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	AvailabilityQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_availability_queries_total",
			Help: "Total number of availability lookups",
		},
		[]string{"result"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "barbershop_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	SettingsCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_settings_cache_total",
			Help: "Settings cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordAvailabilityQuery(result string) {
	AvailabilityQueriesTotal.WithLabelValues(result).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordSettingsCache(outcome string) {
	SettingsCacheHits.WithLabelValues(outcome).Inc()
}
