// Package mailer sends best-effort notification mail. Delivery failures
// are logged and swallowed; they never surface as a request failure.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/ddsolutions/careers-api/internal/config"
)

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPUsername,
	}
}

// Send delivers a plain-text message. Callers fire it in a goroutine and
// ignore the error; it is returned only so tests and logs can see it.
func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("smtp not configured")
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

// SendAsync is the fire-and-forget wrapper used by the contact handler.
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			slog.Warn("notification mail failed", "err", err)
		}
	}()
}
