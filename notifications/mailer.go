package notifications

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"travel-backend/config"
)

// Mailer delivers a single plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through a plain-auth SMTP relay. When the relay isn't
// configured it logs a mock send instead, which keeps development working
// without credentials.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func NewSMTPMailer(cfg config.App) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
	}
}

func (m *SMTPMailer) configured() bool {
	return m.Host != "" && m.Username != "" && m.Password != ""
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if !m.configured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", to, subject)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	to = safe(to)
	subject = safe(subject)

	from := fmt.Sprintf("%s <%s>", m.FromName, m.Username)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, m.Username, []string{to}, []byte(sb.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
