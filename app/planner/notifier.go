package planner

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"study-organizer/app/mail"
	"study-organizer/app/metrics"
	"study-organizer/app/models"
)

// DefaultHorizonDays is how close a deadline must be before a task is
// reported as urgent.
const DefaultHorizonDays = 2

// Notifier scans tasks for deadlines inside the urgency horizon. It is
// the only component that mutates task state: the first time a task is
// found urgent it attempts one email through the Mailer and flips
// Notified, no matter how the attempt went. Later scans keep reporting
// the task in-app but never email again.
type Notifier struct {
	mailer  mail.Mailer
	horizon int
	logger  *zap.Logger
}

func NewNotifier(mailer mail.Mailer, horizonDays int, logger *zap.Logger) *Notifier {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{mailer: mailer, horizon: horizonDays, logger: logger}
}

// HorizonDays returns the configured urgency horizon.
func (n *Notifier) HorizonDays() int {
	return n.horizon
}

// Scan evaluates tasks in the given order against today and returns
// the human-readable notification lines. Done tasks are skipped
// outright. A failed email attempt adds a delivery-failure line after
// the task's deadline line and never aborts the scan.
func (n *Notifier) Scan(tasks []*models.Task, today time.Time, cfg models.EmailConfig) []string {
	var notifications []string
	for _, t := range tasks {
		if t.Done {
			continue
		}
		delta := models.DaysUntil(today, t.Deadline)
		if delta > n.horizon {
			continue
		}

		notifications = append(notifications, deadlineMessage(t, delta))
		metrics.NotificationsEmitted.Inc()

		if t.Notified {
			continue
		}
		// One attempt only; the flag is set even when delivery fails.
		t.Notified = true

		subject := "Study Organizer: task reminder"
		body := fmt.Sprintf("Reminder: task '%s' is due on %s.\n\nThis is an automated reminder from Study Organizer.",
			t.Title, t.DeadlineString())

		metrics.EmailsAttempted.Inc()
		ok, detail := n.mailer.Send(subject, body, cfg)
		if !ok {
			metrics.EmailsFailed.Inc()
			n.logger.Warn("reminder email failed",
				zap.String("task", t.Title),
				zap.String("detail", detail),
			)
			notifications = append(notifications, fmt.Sprintf("Email could not be sent for '%s': %s", t.Title, detail))
			continue
		}
		n.logger.Info("reminder email sent", zap.String("task", t.Title))
	}
	return notifications
}

// NoUrgentMessage is the line shown when a scan finds nothing.
func (n *Notifier) NoUrgentMessage() string {
	return fmt.Sprintf("No urgent tasks within %d days.", n.horizon)
}

func deadlineMessage(t *models.Task, delta int) string {
	switch {
	case delta < 0:
		return fmt.Sprintf("'%s' is overdue by %d day(s) (deadline: %s)", t.Title, -delta, t.DeadlineString())
	case delta == 0:
		return fmt.Sprintf("'%s' is due today (deadline: %s)", t.Title, t.DeadlineString())
	default:
		return fmt.Sprintf("'%s' is due in %d day(s) (deadline: %s)", t.Title, delta, t.DeadlineString())
	}
}
