package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the delivery settings for outgoing mail.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// Sender delivers a rendered email to a single recipient.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}

type smtpSender struct {
	cfg SMTPConfig
}

// NewSender creates an SMTP-backed sender. Credentials may be empty for
// relays that accept unauthenticated mail.
func NewSender(cfg SMTPConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(to, subject, htmlBody, textBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if textBody != "" {
		msg.SetBody("text/plain", textBody)
		msg.AddAlternative("text/html", htmlBody)
	} else {
		msg.SetBody("text/html", htmlBody)
	}

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
