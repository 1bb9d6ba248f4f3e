package mail

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

type Sender interface {
	Send(ctx context.Context, to string, msg Message) error
}

type Mailgun struct {
	client *mg.MailgunImpl
	sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{client: mg.NewMailgun(domain, apiKey), sender: sender}
}

func (m *Mailgun) Send(ctx context.Context, to string, msg Message) error {
	message := m.client.NewMessage(m.sender, msg.Subject, msg.Text, to)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := m.client.Send(c, message)
	return err
}
