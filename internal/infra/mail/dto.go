package mail

// Business holds the published contact details shown to customers in
// the confirmation email.
type Business struct {
	Name  string
	Phone string
	Email string
}

// Addressing is the sender identity and the fixed notification
// recipient for all outbound mail.
type Addressing struct {
	FromEmail string
	FromName  string
	ToEmail   string // business inbox for notifications
}
