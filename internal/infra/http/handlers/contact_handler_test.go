package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/usecase"
)

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendNotification(ctx context.Context, sub *entity.ContactSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockEmailService) SendConfirmation(ctx context.Context, sub *entity.ContactSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func newHandler(mailer usecase.EmailService) *ContactHandler {
	log := zap.NewNop().Sugar()
	return NewContactHandler(usecase.NewSubmitContactUseCase(mailer, nil, nil, log), log)
}

func postContact(h *ContactHandler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Handle(rr, req)
	return rr
}

func validBody(t *testing.T, mutate func(map[string]string)) []byte {
	payload := map[string]string{
		"name":    "John Doe",
		"phone":   "(512) 555-1234",
		"email":   "john@example.com",
		"service": "pumping",
		"urgency": "soon",
		"message": "Backyard smells off",
	}
	if mutate != nil {
		mutate(payload)
	}
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	return body
}

func TestContactHandlerSuccess(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	rr := postContact(newHandler(mailer), validBody(t, nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp usecase.SubmitContactOutput
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "confirmation email")
	mailer.AssertNumberOfCalls(t, "SendNotification", 1)
	mailer.AssertNumberOfCalls(t, "SendConfirmation", 1)
}

func TestContactHandlerPhoneOnlyMessage(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)

	rr := postContact(newHandler(mailer), validBody(t, func(p map[string]string) {
		p["email"] = ""
	}))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp usecase.SubmitContactOutput
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "phone number")
	mailer.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}

func TestContactHandlerValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(p map[string]string) { p["name"] = "" },
			message: "Name is required",
		},
		{
			name:    "missing service",
			mutate:  func(p map[string]string) { p["service"] = "" },
			message: "Service selection is required",
		},
		{
			name:    "missing urgency",
			mutate:  func(p map[string]string) { p["urgency"] = "" },
			message: "Urgency selection is required",
		},
		{
			name: "no contact method",
			mutate: func(p map[string]string) {
				p["phone"] = ""
				p["email"] = ""
			},
			message: "Please provide either a phone number or email address",
		},
		{
			name:    "bad email",
			mutate:  func(p map[string]string) { p["email"] = "foo@bar" },
			message: "Invalid email format",
		},
		{
			name:    "short phone",
			mutate:  func(p map[string]string) { p["phone"] = "555-1234" },
			message: "Please provide a valid 10-digit phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := new(MockEmailService)

			rr := postContact(newHandler(mailer), validBody(t, tt.mutate))

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp["error"])
			mailer.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
		})
	}
}

func TestContactHandlerMalformedBody(t *testing.T) {
	mailer := new(MockEmailService)

	rr := postContact(newHandler(mailer), []byte(`{"name": `))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["error"])
	mailer.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
}

func TestContactHandlerProviderFailureStillSucceeds(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(assert.AnError)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(assert.AnError)

	rr := postContact(newHandler(mailer), validBody(t, nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp usecase.SubmitContactOutput
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestContactHandlerMailerMissing(t *testing.T) {
	rr := postContact(newHandler(nil), validBody(t, nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Email service configuration error", resp["error"])
}

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// Unrelated IPs keep their own budget.
	assert.True(t, rl.Allow("5.6.7.8"))
}
