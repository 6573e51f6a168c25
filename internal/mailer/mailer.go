package mailer

import (
	"log/slog"

	"gopkg.in/gomail.v2"

	"artgrid/internal/config"
)

// Mailer sends a transactional email. Delivery is best-effort
// everywhere in this codebase: failures are logged, never surfaced to
// the request that triggered them.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through a gomail dialer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPUsername,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

// SendAsync fires the email off in a goroutine and logs failures.
func SendAsync(m Mailer, log *slog.Logger, to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			log.Error("email delivery failed", "to", to, "subject", subject, "error", err)
		}
	}()
}
