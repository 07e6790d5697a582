package notification

import (
	"context"
	"log"

	"github.com/resend/resend-go/v2"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResendMailer delivers through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return err
	}

	log.Printf("email sent id=%s to=%s", sent.Id, msg.To)
	return nil
}

// LogMailer is used when no API key is configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	log.Printf("email (not sent) to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
