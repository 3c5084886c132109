package usecase

type SubmitContactInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Urgency string `json:"urgency"`
	Message string `json:"message"`
}

type SubmitContactOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fixed acknowledgement strings. Which one the caller gets depends only
// on whether the submission carried an email address.
const (
	MsgSubmittedWithEmail = "Thank you for contacting us! We'll respond within 2 hours during business hours. A confirmation email has been sent to you."
	MsgSubmittedPhoneOnly = "Thank you for contacting us! We'll respond within 2 hours during business hours. We'll contact you at the phone number provided."
)
