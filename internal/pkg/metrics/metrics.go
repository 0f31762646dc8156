package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "holisticweb"

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created by status.",
		},
		[]string{"status"},
	)

	notificationDelivery = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_delivery_total",
			Help:      "Notification delivery attempts by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	reminderScan = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_scan_bookings_total",
			Help:      "Bookings visited by the reminder scanner by result.",
		},
		[]string{"result"},
	)

	outboxClaimed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_jobs_claimed_total",
			Help:      "Notification jobs claimed by the outbox worker.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingCreated,
			notificationDelivery,
			reminderScan,
			outboxClaimed,
			httpRequests,
			httpDuration,
		)
	})
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncNotificationDelivery(kind, outcome string) {
	notificationDelivery.WithLabelValues(kind, outcome).Inc()
}

func AddReminderScan(result string, n int) {
	if n <= 0 {
		return
	}
	reminderScan.WithLabelValues(result).Add(float64(n))
}

func AddOutboxClaimed(n int) {
	if n <= 0 {
		return
	}
	outboxClaimed.Add(float64(n))
}

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
