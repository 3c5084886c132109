package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
)

// Content is one fully rendered email: subject, HTML body and the
// plain-text fallback.
type Content struct {
	Subject string
	HTML    string
	Text    string
}

const notificationHTML = `<h2>New Service Request</h2>
<table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse">
  <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
  <tr><td><strong>Phone</strong></td><td>{{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</td></tr>
  <tr><td><strong>Email</strong></td><td>{{if .Email}}{{.Email}}{{else}}Not provided{{end}}</td></tr>
  <tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>
  <tr><td><strong>Urgency</strong></td><td>{{.Urgency}}</td></tr>
  <tr><td><strong>Message</strong></td><td>{{if .Message}}{{.Message}}{{else}}No message{{end}}</td></tr>
</table>`

const confirmationHTML = `<h2>Thank you, {{.Name}}!</h2>
<p>We received your request for <strong>{{.Service}}</strong> ({{.Urgency}}) and will get back to you shortly.</p>
<p>Need immediate help? Reach us directly:</p>
<ul>
  <li>Phone: {{.BusinessPhone}}</li>
  <li>Email: {{.BusinessEmail}}</li>
</ul>
<p>&mdash; {{.BusinessName}}</p>`

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationHTML))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))
)

type notificationData struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Urgency string
	Message string
}

type confirmationData struct {
	Name          string
	Service       string
	Urgency       string
	BusinessName  string
	BusinessPhone string
	BusinessEmail string
}

// BuildNotification renders the email sent to the business inbox. The
// subject is prefixed EMERGENCY for emergency requests so they stand
// out in the inbox.
func BuildNotification(sub *entity.ContactSubmission) (*Content, error) {
	data := notificationData{
		Name:    sub.Name,
		Phone:   sub.Phone,
		Email:   sub.Email,
		Service: entity.ServiceLabel(sub.Service),
		Urgency: entity.UrgencyLabel(sub.Urgency),
		Message: sub.Message,
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render notification template: %w", err)
	}

	subject := fmt.Sprintf("Contact Form: Service Request from %s", sub.Name)
	if sub.IsEmergency() {
		subject = fmt.Sprintf("EMERGENCY Service Request from %s", sub.Name)
	}

	text := fmt.Sprintf(
		"New service request\n\nName: %s\nPhone: %s\nEmail: %s\nService: %s\nUrgency: %s\nMessage: %s\n",
		data.Name, orDash(data.Phone), orDash(data.Email), data.Service, data.Urgency, orDash(data.Message),
	)

	return &Content{Subject: subject, HTML: body.String(), Text: text}, nil
}

// BuildConfirmation renders the thank-you email sent to the customer.
func BuildConfirmation(sub *entity.ContactSubmission, biz Business) (*Content, error) {
	data := confirmationData{
		Name:          sub.Name,
		Service:       entity.ServiceLabel(sub.Service),
		Urgency:       entity.UrgencyLabel(sub.Urgency),
		BusinessName:  biz.Name,
		BusinessPhone: biz.Phone,
		BusinessEmail: biz.Email,
	}

	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render confirmation template: %w", err)
	}

	subject := fmt.Sprintf("Thank you for contacting %s", biz.Name)

	text := fmt.Sprintf(
		"Thank you, %s!\n\nWe received your request for %s (%s) and will get back to you shortly.\n\nNeed immediate help?\nPhone: %s\nEmail: %s\n\n- %s\n",
		data.Name, data.Service, data.Urgency, data.BusinessPhone, data.BusinessEmail, data.BusinessName,
	)

	return &Content{Subject: subject, HTML: body.String(), Text: text}, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
