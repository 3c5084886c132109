package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
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

// MockSubmissionStore
type MockSubmissionStore struct {
	mock.Mock
}

func (m *MockSubmissionStore) Save(ctx context.Context, rec *entity.SubmissionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// MockEventReporter
type MockEventReporter struct {
	mock.Mock
}

func (m *MockEventReporter) Report(ctx context.Context, event string, props map[string]string) {
	m.Called(ctx, event, props)
}

func newUseCase(mailer EmailService) *SubmitContactUseCase {
	return NewSubmitContactUseCase(mailer, nil, nil, zap.NewNop().Sugar())
}

func TestSubmitContactBothChannels(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	output, err := newUseCase(mailer).Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Contains(t, output.Message, "confirmation email")
	mailer.AssertNumberOfCalls(t, "SendNotification", 1)
	mailer.AssertNumberOfCalls(t, "SendConfirmation", 1)
}

func TestSubmitContactPhoneOnly(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Email = ""

	output, err := newUseCase(mailer).Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Contains(t, output.Message, "phone number")
	mailer.AssertNumberOfCalls(t, "SendNotification", 1)
	mailer.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}

func TestSubmitContactNotificationFailureIsSwallowed(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(errors.New("provider down"))
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	output, err := newUseCase(mailer).Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
}

func TestSubmitContactConfirmationFailureIsSwallowed(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(errors.New("mailbox full"))

	output, err := newUseCase(mailer).Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
}

func TestSubmitContactValidationFailureSendsNothing(t *testing.T) {
	mailer := new(MockEmailService)

	input := validInput()
	input.Name = ""

	output, err := newUseCase(mailer).Execute(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, IsValidationError(err))
	mailer.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}

func TestSubmitContactNoMailerConfigured(t *testing.T) {
	output, err := newUseCase(nil).Execute(context.Background(), validInput())

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
	assert.EqualError(t, err, "Email service configuration error")
}

func TestSubmitContactTrimsFields(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.MatchedBy(func(sub *entity.ContactSubmission) bool {
		return sub.Name == "John Doe" && sub.Email == "john@example.com"
	})).Return(nil)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Name = "  John Doe  "
	input.Email = " john@example.com "

	_, err := newUseCase(mailer).Execute(context.Background(), input)

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestSubmitContactBackstopWriteBeforeDispatch(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	store := new(MockSubmissionStore)
	store.On("Save", mock.Anything, mock.MatchedBy(func(rec *entity.SubmissionRecord) bool {
		return rec.ID != "" && rec.Name == "John Doe" && !rec.CreatedAt.IsZero()
	})).Return(nil)

	uc := NewSubmitContactUseCase(mailer, store, nil, zap.NewNop().Sugar())
	output, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	store.AssertExpectations(t)
}

func TestSubmitContactBackstopFailureIsSwallowed(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	store := new(MockSubmissionStore)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("db unreachable"))

	uc := NewSubmitContactUseCase(mailer, store, nil, zap.NewNop().Sugar())
	output, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
}

func TestSubmitContactReportsAnalyticsEvent(t *testing.T) {
	mailer := new(MockEmailService)
	mailer.On("SendNotification", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	reporter := new(MockEventReporter)
	reporter.On("Report", mock.Anything, "contact_form", map[string]string{
		"service": "pumping",
		"urgency": "soon",
	}).Once()

	uc := NewSubmitContactUseCase(mailer, nil, reporter, zap.NewNop().Sugar())
	_, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	reporter.AssertExpectations(t)
}
