package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends transactional mail. Every caller treats a send as
// best-effort: failures are logged by the caller and never abort the
// mutation that triggered them.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTP(host string, port int, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

// DevConsoleMailer logs instead of sending. Used when no SMTP host is
// configured.
type DevConsoleMailer struct {
	enabled bool
	printf  func(format string, args ...interface{})
}

func NewDevConsole(enabled bool, printf func(format string, args ...interface{})) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled, printf: printf}
}

func (m *DevConsoleMailer) Send(_ context.Context, to, subject, body string) error {
	if m.enabled && m.printf != nil {
		m.printf("[DEV-EMAIL] to=%s subject=%q body=%q", to, subject, body)
	}
	return nil
}
