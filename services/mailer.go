package services

import (
	"fmt"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type MailService struct {
	client *sendgrid.Client
	from   *mail.Email
}

var Mailer *MailService

func InitializeMailer(apiKey, fromName, fromAddress string) error {
	if apiKey == "" {
		return fmt.Errorf("sendgrid API key is required")
	}
	Mailer = &MailService{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
	}
	return nil
}

// SendQueryReply mails a support reply, quoting the original query.
func (m *MailService) SendQueryReply(to, subject, reply, query string) error {
	plain := fmt.Sprintf("%s\n\n---\nOriginal query:\n%s", reply, query)
	html := fmt.Sprintf(`<div style="font-family:Arial,sans-serif; font-size: 16px">
      <p>%s</p>
      <br/>
      <p><strong>Original query:</strong></p>
      <blockquote>%s</blockquote>
    </div>`, reply, query)

	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", to), plain, html)
	response, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status %d", response.StatusCode)
	}
	return nil
}
