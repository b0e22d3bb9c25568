package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubdeportivo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clubdeportivo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EnrollmentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubdeportivo_enrollments_total",
			Help: "Total number of class enrollments",
		},
	)

	EnrollmentCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubdeportivo_enrollment_cancellations_total",
			Help: "Total number of enrollment cancellations",
		},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubdeportivo_registrations_total",
			Help: "Total number of student registrations",
		},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubdeportivo_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordEnrollment() {
	EnrollmentsTotal.Inc()
}

func RecordEnrollmentCancellation() {
	EnrollmentCancellationsTotal.Inc()
}

func RecordRegistration() {
	RegistrationsTotal.Inc()
}

func RecordLoginAttempt(status string) {
	LoginAttemptsTotal.WithLabelValues(status).Inc()
}
