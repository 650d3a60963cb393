package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"github.com/docnest/docnest/internal/boot"
)

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPSender(config *boot.Config) (*SMTPSender, error) {
	c := config.Email
	if c.SMTP.Host == "" || c.SMTP.Username == "" || c.SMTP.Password == "" || c.From == "" {
		return nil, errors.New("incomplete smtp configuration")
	}
	return &SMTPSender{
		host:     c.SMTP.Host,
		port:     c.SMTP.Port,
		username: c.SMTP.Username,
		password: c.SMTP.Password,
		from:     c.From,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, htmlBody))

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("sending mail via smtp: %w", err)
	}
	return nil
}
