package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
)

// SMTPSender is the gomail-backed alternative for environments without
// Mailjet credentials (MAIL_PROVIDER=smtp). Same messages, plain SMTP.
type SMTPSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	Addressing Addressing
	Business   Business
}

func NewSMTPSender(host string, port int, user, password string, addressing Addressing, business Business) *SMTPSender {
	return &SMTPSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		Addressing: addressing,
		Business:   business,
	}
}

func (s *SMTPSender) SendNotification(_ context.Context, sub *entity.ContactSubmission) error {
	content, err := BuildNotification(sub)
	if err != nil {
		return err
	}
	return s.send(s.Addressing.ToEmail, content)
}

func (s *SMTPSender) SendConfirmation(_ context.Context, sub *entity.ContactSubmission) error {
	if !sub.HasEmail() {
		return fmt.Errorf("confirmation requires a customer email")
	}

	content, err := BuildConfirmation(sub, s.Business)
	if err != nil {
		return err
	}
	return s.send(sub.Email, content)
}

func (s *SMTPSender) send(to string, content *Content) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.Addressing.FromEmail, s.Addressing.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", content.Subject)
	m.SetBody("text/plain", content.Text)
	m.AddAlternative("text/html", content.HTML)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
