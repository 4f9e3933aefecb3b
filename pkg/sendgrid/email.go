package sendgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrNotConfigured = errors.New("email provider is not configured")

type EmailService interface {
	Send(ctx context.Context, email *models.TemplateEmail) error
	GetSendGridClient() *sendgrid.Client
}

type emailService struct {
	client    *sendgrid.Client
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

// Send delivers a dynamic-template email when TemplateID is set, plain
// text and HTML content otherwise.
func (e *emailService) Send(ctx context.Context, email *models.TemplateEmail) error {
	if e.apiKey == "" {
		return ErrNotConfigured
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(email.Name, email.Recipient))

	for _, bcc := range email.BCC {
		if bcc != "" && bcc != email.Recipient {
			personalization.AddBCCs(mail.NewEmail("", bcc))
		}
	}

	personalization.Subject = email.Subject

	if email.TemplateID != "" {
		message.SetTemplateID(email.TemplateID)

		for k, v := range email.Data {
			personalization.SetDynamicTemplateData(k, v)
		}

		personalization.SetDynamicTemplateData("subject", email.Subject)
	} else {
		message.AddContent(mail.NewContent("text/plain", email.Text))

		if email.HTML != "" {
			message.AddContent(mail.NewContent("text/html", email.HTML))
		}
	}

	message.AddPersonalizations(personalization)

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient provides access to the internal sendgrid.Client.
func (e *emailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}
