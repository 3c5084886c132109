package entity

import (
	"context"
	"regexp"
	"time"
)

// Service options offered on the contact form.
const (
	ServicePumping      = "pumping"
	ServiceInstallation = "installation"
	ServiceRepairs      = "repairs"
	ServiceMaintenance  = "maintenance"
	ServiceOther        = "other"
)

// Urgency options offered on the contact form.
const (
	UrgencyEmergency = "emergency"
	UrgencySoon      = "soon"
	UrgencyScheduled = "scheduled"
)

var serviceLabels = map[string]string{
	ServicePumping:      "Septic Pumping/Cleaning",
	ServiceInstallation: "New System Installation",
	ServiceRepairs:      "Septic Repairs",
	ServiceMaintenance:  "Maintenance Plan",
	ServiceOther:        "Other/Not Sure",
}

var urgencyLabels = map[string]string{
	UrgencyEmergency: "EMERGENCY - Need help now!",
	UrgencySoon:      "Soon - Within a few days",
	UrgencyScheduled: "Scheduled - Planning ahead",
}

var nonDigits = regexp.MustCompile(`\D`)

// ServiceLabel maps a service value to the text shown in emails.
// Unknown values pass through unchanged.
func ServiceLabel(service string) string {
	if label, ok := serviceLabels[service]; ok {
		return label
	}
	return service
}

// UrgencyLabel maps an urgency value to the text shown in emails.
func UrgencyLabel(urgency string) string {
	if label, ok := urgencyLabels[urgency]; ok {
		return label
	}
	return urgency
}

// ContactSubmission is one contact form submission. It has no identity
// and no lifecycle: built from user input, validated, rendered into two
// emails, then discarded.
type ContactSubmission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Service string `json:"service"`
	Urgency string `json:"urgency"`
	Message string `json:"message,omitempty"`
}

func (s *ContactSubmission) IsEmergency() bool {
	return s.Urgency == UrgencyEmergency
}

func (s *ContactSubmission) HasEmail() bool {
	return s.Email != ""
}

// PhoneDigits returns the phone number with every non-digit stripped.
func (s *ContactSubmission) PhoneDigits() string {
	return nonDigits.ReplaceAllString(s.Phone, "")
}

// SubmissionRecord is a persisted copy of a valid submission, kept as a
// backstop so a lead survives a lost notification email.
type SubmissionRecord struct {
	ID string `json:"id"`
	ContactSubmission
	CreatedAt time.Time `json:"created_at"`
}

type SubmissionRepositoryInterface interface {
	Save(ctx context.Context, rec *SubmissionRecord) error
}
