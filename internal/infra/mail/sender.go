package mail

import (
	"context"
	"fmt"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/integration/mailjet"
)

// MailjetSender delivers both contact-form emails through the Mailjet
// send API. This is the default production sender.
type MailjetSender struct {
	Client     *mailjet.Client
	Addressing Addressing
	Business   Business
}

func NewMailjetSender(client *mailjet.Client, addressing Addressing, business Business) *MailjetSender {
	return &MailjetSender{
		Client:     client,
		Addressing: addressing,
		Business:   business,
	}
}

func (s *MailjetSender) SendNotification(ctx context.Context, sub *entity.ContactSubmission) error {
	content, err := BuildNotification(sub)
	if err != nil {
		return err
	}

	return s.Client.Send(ctx, mailjet.SendInput{
		FromEmail: s.Addressing.FromEmail,
		FromName:  s.Addressing.FromName,
		ToEmail:   s.Addressing.ToEmail,
		Subject:   content.Subject,
		TextBody:  content.Text,
		HTMLBody:  content.HTML,
		CustomID:  "contact-notification",
	})
}

func (s *MailjetSender) SendConfirmation(ctx context.Context, sub *entity.ContactSubmission) error {
	if !sub.HasEmail() {
		return fmt.Errorf("confirmation requires a customer email")
	}

	content, err := BuildConfirmation(sub, s.Business)
	if err != nil {
		return err
	}

	return s.Client.Send(ctx, mailjet.SendInput{
		FromEmail: s.Addressing.FromEmail,
		FromName:  s.Addressing.FromName,
		ToEmail:   sub.Email,
		ToName:    sub.Name,
		Subject:   content.Subject,
		TextBody:  content.Text,
		HTMLBody:  content.HTML,
		CustomID:  "contact-confirmation",
	})
}
