package usecase

import "fmt"

// ValidationError is a user-correctable input error. The handler maps
// it to HTTP 400 with Message as the response body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// TechnicalError is an operator problem, not a user problem. The
// handler maps it to HTTP 500.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// ErrMailNotConfigured is returned when a request arrives without a
// working email sender. Startup normally fails closed before this can
// happen.
var ErrMailNotConfigured = &TechnicalError{
	Code:    "MAIL_NOT_CONFIGURED",
	Message: "Email service configuration error",
}
