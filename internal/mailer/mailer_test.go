package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"

	"github.com/docnest/docnest/internal/mailer/outbox"
	"github.com/docnest/docnest/internal/model"
)

type fakeSender struct {
	sent    []string
	subject string
	body    string
	err     error
}

func (s *fakeSender) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	s.subject = subject
	s.body = htmlBody
	return nil
}

func newTestMailer(t *testing.T, sender Sender) *Mailer {
	t.Helper()

	logger := log.New("test")
	logger.SetLevel(log.OFF)

	templates, err := LoadTemplates("", false, logger)
	assert.Nil(t, err)

	box, err := outbox.Open(t.TempDir())
	assert.Nil(t, err)
	t.Cleanup(func() { box.Close() })

	return &Mailer{
		sender:    sender,
		templates: templates,
		baseURL:   "https://app.example.com",
		outbox:    box,
		logger:    logger,
	}
}

func TestSendVerification(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{}
	m := newTestMailer(t, sender)

	err := m.SendVerification(context.Background(), "a@x.com", "tok123")
	assert.Nil(err)
	assert.Equal([]string{"a@x.com"}, sender.sent)
	assert.Equal("Email Verification", sender.subject)
	assert.Contains(sender.body, "https://app.example.com/verify/tok123")
}

func TestSendPasswordReset(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{}
	m := newTestMailer(t, sender)

	err := m.SendPasswordReset(context.Background(), "a@x.com", "tok456")
	assert.Nil(err)
	assert.Equal("Reset Password", sender.subject)
	assert.Contains(sender.body, "/reset-password/tok456")
}

func TestDeliveryFailureIsRecorded(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{err: errors.New("smtp unreachable")}
	m := newTestMailer(t, sender)

	err := m.SendVerification(context.Background(), "a@x.com", "tok123")
	assert.ErrorIs(err, model.ErrorSendFailed)

	failed, err := m.outbox.ListFailed()
	assert.Nil(err)
	assert.Len(failed, 1)
	assert.Equal("a@x.com", failed[0].Recipient)
}
