package mailjet

// SendInput is the provider-agnostic shape the rest of the app hands
// to the client. One call, one message.
type SendInput struct {
	FromEmail string
	FromName  string
	ToEmail   string
	ToName    string
	Subject   string
	TextBody  string
	HTMLBody  string
	CustomID  string
}

// Wire format of the Mailjet v3.1 send API.

type sendRequest struct {
	Messages []messageRequest `json:"Messages"`
}

type messageRequest struct {
	From     recipient   `json:"From"`
	To       []recipient `json:"To"`
	Subject  string      `json:"Subject"`
	TextPart string      `json:"TextPart,omitempty"`
	HTMLPart string      `json:"HTMLPart,omitempty"`
	CustomID string      `json:"CustomID,omitempty"`
}

type recipient struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type sendResponse struct {
	Messages []messageResult `json:"Messages"`
}

type messageResult struct {
	Status string         `json:"Status"`
	Errors []messageError `json:"Errors,omitempty"`
}

type messageError struct {
	ErrorCode    string `json:"ErrorCode"`
	ErrorMessage string `json:"ErrorMessage"`
}
