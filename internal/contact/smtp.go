package contact

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/rs/zerolog"
)

// ErrSMTPNotConfigured is returned when credentials or the recipient are missing.
var ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP relays submissions to a mailbox. Build it with NewSMTP; a bare
// literal sends mail but logs nothing.
type SMTP struct {
	Host string // e.g. "smtp.gmail.com"
	Port string // e.g. "587"
	User string
	Pass string
	To   string

	sendMail sendMailFunc
	logger   zerolog.Logger
}

// NewSMTP returns an SMTP transport logging under the contact.smtp component.
func NewSMTP(host, port, user, pass, to string) *SMTP {
	return &SMTP{
		Host:   host,
		Port:   port,
		User:   user,
		Pass:   pass,
		To:     to,
		logger: logging.Component("contact.smtp"),
	}
}

// Send mails msg to s.To with Reply-To set to the visitor's address.
func (s *SMTP) Send(ctx context.Context, msg Fields) error {
	if s.User == "" || s.Pass == "" || s.To == "" {
		return ErrSMTPNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	send := s.sendMail
	if send == nil {
		send = smtp.SendMail
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	addr := net.JoinHostPort(s.Host, s.Port)
	if err := send(addr, auth, s.User, []string{s.To}, s.compose(msg)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}

	s.logger.Info().Str("to", s.To).Str("from_name", msg.Name).Msg("contact email sent")
	return nil
}

func (s *SMTP) compose(msg Fields) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	var b strings.Builder
	b.WriteString("To: " + s.To + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + headerValue(msg.Subject) + "\r\n")
	b.WriteString("From: " + s.User + "\r\n")
	b.WriteString("Reply-To: " + headerValue(msg.Email) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// headerValue strips line breaks so visitor input cannot add headers.
func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(v))
}
