package notification

import (
	"fmt"

	mail "gopkg.in/mail.v2"

	"fixflow/config"
)

// Mailer sends email over SMTP with the configured credentials.
type Mailer struct {
	dialer *mail.Dialer
	from   string
}

func NewMailer() *Mailer {
	cfg := config.AppConfig
	return &Mailer{
		dialer: mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

// Send delivers a single HTML email.
func (m *Mailer) Send(to, subject, body string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
