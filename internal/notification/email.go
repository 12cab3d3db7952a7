package notification

import (
	"context"
	"fmt"
	"html"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridChannel emails alerts to the administrator address.
type SendGridChannel struct {
	client mailSender
	from   *mail.Email
	to     *mail.Email
}

func NewSendGridChannel(apiKey, from, to string) *SendGridChannel {
	return newSendGridChannel(sendgrid.NewSendClient(apiKey), from, to)
}

func newSendGridChannel(client mailSender, from, to string) *SendGridChannel {
	return &SendGridChannel{
		client: client,
		from:   mail.NewEmail("Ticket Service", from),
		to:     mail.NewEmail("Administrator", to),
	}
}

func (s *SendGridChannel) Name() string { return "email" }

func (s *SendGridChannel) Send(ctx context.Context, alert Alert) error {
	msg := mail.NewSingleEmail(s.from, alert.subject(), s.to, alert.text(),
		"<p>"+html.EscapeString(alert.text())+"</p>")
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
