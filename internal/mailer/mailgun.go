package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/docnest/docnest/internal/boot"
)

// MailgunSender delivers mail through the Mailgun API.
type MailgunSender struct {
	client *mailgun.MailgunImpl
	from   string
}

func NewMailgunSender(config *boot.Config) (*MailgunSender, error) {
	c := config.Email
	if c.Mailgun.Domain == "" || c.Mailgun.APIKey == "" || c.From == "" {
		return nil, errors.New("incomplete mailgun configuration")
	}
	return &MailgunSender{
		client: mailgun.NewMailgun(c.Mailgun.Domain, c.Mailgun.APIKey),
		from:   c.From,
	}, nil
}

func (s *MailgunSender) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	message := s.client.NewMessage(s.from, subject, "")
	if err := message.AddRecipient(to); err != nil {
		return fmt.Errorf("adding recipient: %w", err)
	}
	message.SetHtml(htmlBody)

	if _, _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("sending mail via mailgun: %w", err)
	}
	return nil
}
