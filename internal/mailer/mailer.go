// Package mailer delivers account notification emails. A provider is chosen
// at boot from configuration; every attempted delivery is recorded in the
// outbox so a user left unnotified by a failed send can be found later.
package mailer

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/docnest/docnest/internal/boot"
	"github.com/docnest/docnest/internal/mailer/outbox"
	"github.com/docnest/docnest/internal/model"
)

// Sender delivers a single message to a single recipient.
type Sender interface {
	Send(ctx context.Context, to string, subject string, htmlBody string) error
}

// Mailer composes templated notification emails and hands them to the
// configured provider.
type Mailer struct {
	sender    Sender
	templates *TemplateSet
	baseURL   string
	outbox    *outbox.Outbox
	logger    *log.Logger
}

func New(config *boot.Config, logger *log.Logger) (*Mailer, error) {
	sender, err := newSender(config)
	if err != nil {
		return nil, err
	}

	templates, err := LoadTemplates(config.Email.TemplateDir, config.IsDevelopment(), logger)
	if err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	box, err := outbox.Open(config.DataDirectory())
	if err != nil {
		return nil, fmt.Errorf("opening outbox: %w", err)
	}

	return &Mailer{
		sender:    sender,
		templates: templates,
		baseURL:   config.BaseURL,
		outbox:    box,
		logger:    logger,
	}, nil
}

func newSender(config *boot.Config) (Sender, error) {
	switch config.Email.Provider {
	case "smtp":
		return NewSMTPSender(config)
	case "mailgun":
		return NewMailgunSender(config)
	default:
		return nil, fmt.Errorf("unknown email provider %q", config.Email.Provider)
	}
}

func (m *Mailer) Close() error {
	return m.outbox.Close()
}

// SendVerification mails the signup verification link for the given action
// token.
func (m *Mailer) SendVerification(ctx context.Context, to string, actionToken string) error {
	link := fmt.Sprintf("%s/verify/%s", m.baseURL, actionToken)
	body, err := m.templates.Render(TemplateVerification, &TemplateData{Link: link})
	if err != nil {
		return fmt.Errorf("rendering verification email: %w", err)
	}
	return m.deliver(ctx, outbox.KindVerification, to, "Email Verification", body)
}

// SendPasswordReset mails the reset-password link for the given action token.
func (m *Mailer) SendPasswordReset(ctx context.Context, to string, actionToken string) error {
	link := fmt.Sprintf("%s/%s/reset-password/%s", m.baseURL, to, actionToken)
	body, err := m.templates.Render(TemplateReset, &TemplateData{Link: link})
	if err != nil {
		return fmt.Errorf("rendering reset email: %w", err)
	}
	return m.deliver(ctx, outbox.KindPasswordReset, to, "Reset Password", body)
}

func (m *Mailer) deliver(ctx context.Context, kind outbox.Kind, to string, subject string, body string) error {
	err := m.sender.Send(ctx, to, subject, body)

	status := outbox.StatusSent
	if err != nil {
		status = outbox.StatusFailed
		m.logger.Errorf("sending %s email to %s: %v", kind, to, err)
	}
	if logErr := m.outbox.Record(kind, to, subject, status); logErr != nil {
		m.logger.Errorf("recording outbox entry: %v", logErr)
	}

	if err != nil {
		return model.ErrorSendFailed
	}
	m.logger.Infof("%s email sent to %s", kind, to)
	return nil
}
