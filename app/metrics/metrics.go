package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "study_organizer_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "path", "status"})

	NotificationsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "study_organizer_notifications_emitted_total",
		Help: "In-app deadline notifications produced by scans.",
	})

	EmailsAttempted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "study_organizer_emails_attempted_total",
		Help: "Reminder email attempts (at most one per task).",
	})

	EmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "study_organizer_emails_failed_total",
		Help: "Reminder email attempts that did not deliver.",
	})
)
