package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_reservations_total",
			Help: "Total number of reservations created",
		},
		[]string{"service"},
	)

	ConfirmationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_confirmations_total",
			Help: "Total number of bookings confirmed",
		},
	)

	CancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_cancellations_total",
			Help: "Total number of bookings cancelled",
		},
	)

	SlotComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_slot_computations_total",
			Help: "Total number of per-day free slot computations",
		},
		[]string{"service"},
	)

	SlotsOffered = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_slots_offered",
			Help:    "Free slots returned per computed day",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		},
		[]string{"service"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "booking_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordReservation(service string) {
	ReservationsTotal.WithLabelValues(service).Inc()
}

func RecordConfirmation() {
	ConfirmationsTotal.Inc()
}

func RecordCancellation() {
	CancellationsTotal.Inc()
}

func RecordSlotComputation(service string, slots int) {
	SlotComputationsTotal.WithLabelValues(service).Inc()
	SlotsOffered.WithLabelValues(service).Observe(float64(slots))
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
