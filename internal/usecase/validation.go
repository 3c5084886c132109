package usecase

import (
	"regexp"
	"strings"
)

var (
	// Intentionally basic: local@domain.tld. net/mail.ParseAddress is
	// too permissive here, it accepts addresses without a TLD.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigits = regexp.MustCompile(`\D`)
)

// ValidateSubmitContactInput checks the submission in a fixed order and
// stops at the first failure, so every rejection carries exactly one
// reason.
func ValidateSubmitContactInput(input SubmitContactInput) *ValidationError {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	email := strings.TrimSpace(input.Email)

	if name == "" {
		return &ValidationError{Field: "name", Message: "Name is required"}
	}

	if strings.TrimSpace(input.Service) == "" {
		return &ValidationError{Field: "service", Message: "Service selection is required"}
	}

	if strings.TrimSpace(input.Urgency) == "" {
		return &ValidationError{Field: "urgency", Message: "Urgency selection is required"}
	}

	if phone == "" && email == "" {
		return &ValidationError{Field: "contact", Message: "Please provide either a phone number or email address"}
	}

	if email != "" && !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}

	if phone != "" && len(nonDigits.ReplaceAllString(phone, "")) < 10 {
		return &ValidationError{Field: "phone", Message: "Please provide a valid 10-digit phone number"}
	}

	return nil
}
