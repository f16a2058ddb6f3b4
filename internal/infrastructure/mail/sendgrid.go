package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends operator notification mail through SendGrid.
type SendGridMailer struct {
	client *sendgrid.Client
	from   string
	to     string
}

// NewSendGridMailer creates a mailer that delivers to the configured operator
// address.
func NewSendGridMailer(apiKey, from, to string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, subject, body string) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail("", m.from),
		subject,
		sgmail.NewEmail("", m.to),
		body,
		body,
	)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}
	return nil
}
