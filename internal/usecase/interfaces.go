package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
)

// EmailService sends the two fixed messages built from a submission.
type EmailService interface {
	SendNotification(ctx context.Context, sub *entity.ContactSubmission) error
	SendConfirmation(ctx context.Context, sub *entity.ContactSubmission) error
}

// SubmissionStore persists valid submissions as a backstop against lost
// notification emails. Optional.
type SubmissionStore interface {
	Save(ctx context.Context, rec *entity.SubmissionRecord) error
}

// EventReporter is a fire-and-forget analytics sink. Implementations
// must not block and must never surface failures to the caller.
type EventReporter interface {
	Report(ctx context.Context, event string, props map[string]string)
}

type SubmitContactUseCase struct {
	Mailer   EmailService
	Store    SubmissionStore // nil disables the backstop
	Reporter EventReporter   // nil disables analytics
	Log      *zap.SugaredLogger
}

func NewSubmitContactUseCase(
	mailer EmailService,
	store SubmissionStore,
	reporter EventReporter,
	log *zap.SugaredLogger,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		Mailer:   mailer,
		Store:    store,
		Reporter: reporter,
		Log:      log,
	}
}
