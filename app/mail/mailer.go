package mail

import (
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"study-organizer/app/models"
)

// Mailer is the outbound email collaborator. Implementations must be
// bounded in time and must never panic or return a Go error: delivery
// problems collapse into (false, reason) so a notification scan can
// report them and move on.
type Mailer interface {
	Send(subject, body string, cfg models.EmailConfig) (ok bool, detail string)
}

// SMTPMailer submits mail over implicit TLS with the sender address as
// the login username (the Gmail app-password setup the settings page
// describes).
type SMTPMailer struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// NewSMTPMailer returns a mailer with the given submission endpoint.
// Zero values fall back to smtp.gmail.com:465 with a 10s timeout.
func NewSMTPMailer(host string, port int, timeout time.Duration) *SMTPMailer {
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == 0 {
		port = 465
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &SMTPMailer{Host: host, Port: port, Timeout: timeout}
}

func (m *SMTPMailer) Send(subject, body string, cfg models.EmailConfig) (bool, string) {
	if !cfg.IsConfigured() {
		return false, "Email not configured."
	}

	msg := gomail.NewMsg()
	if err := msg.From(cfg.Sender); err != nil {
		return false, fmt.Sprintf("Email error: %v", err)
	}
	if err := msg.To(cfg.Recipient); err != nil {
		return false, fmt.Sprintf("Email error: %v", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(m.Host,
		gomail.WithPort(m.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Sender),
		gomail.WithPassword(cfg.Password),
		gomail.WithTimeout(m.Timeout),
	)
	if err != nil {
		return false, fmt.Sprintf("Email error: %v", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return false, fmt.Sprintf("Email error: %v", err)
	}
	return true, "Email sent."
}
