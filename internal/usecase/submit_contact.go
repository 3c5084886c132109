package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/http/middleware"
)

// Execute validates one submission and dispatches the notification and
// confirmation emails. Delivery is best-effort: once validation passes
// the lead is considered captured, and a provider failure is logged but
// never surfaced to the caller.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	if verr := ValidateSubmitContactInput(input); verr != nil {
		return nil, verr
	}

	if uc.Mailer == nil {
		return nil, ErrMailNotConfigured
	}

	sub := &entity.ContactSubmission{
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   strings.TrimSpace(input.Email),
		Service: strings.TrimSpace(input.Service),
		Urgency: strings.TrimSpace(input.Urgency),
		Message: strings.TrimSpace(input.Message),
	}

	// Backstop write before dispatch, so the lead survives even if both
	// sends fail. Best-effort as well.
	if uc.Store != nil {
		rec := &entity.SubmissionRecord{
			ID:                uuid.NewString(),
			ContactSubmission: *sub,
			CreatedAt:         time.Now().UTC(),
		}
		if err := uc.Store.Save(ctx, rec); err != nil {
			uc.Log.Warnw("submission backstop write failed", "error", err)
		}
	}

	uc.dispatchEmails(ctx, sub)

	if uc.Reporter != nil {
		uc.Reporter.Report(ctx, "contact_form", map[string]string{
			"service": sub.Service,
			"urgency": sub.Urgency,
		})
	}

	msg := MsgSubmittedPhoneOnly
	if sub.HasEmail() {
		msg = MsgSubmittedWithEmail
	}

	return &SubmitContactOutput{Success: true, Message: msg}, nil
}

// dispatchEmails issues the notification send, and the confirmation
// send when the customer left an email, in parallel. Both outcomes are
// observed before returning so no failure goes unlogged.
func (uc *SubmitContactUseCase) dispatchEmails(ctx context.Context, sub *entity.ContactSubmission) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := uc.Mailer.SendNotification(ctx, sub); err != nil {
			middleware.RecordEmailSend("notification", "error")
			uc.Log.Errorw("notification email failed", "service", sub.Service, "error", err)
			return
		}
		middleware.RecordEmailSend("notification", "sent")
	}()

	if sub.HasEmail() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := uc.Mailer.SendConfirmation(ctx, sub); err != nil {
				middleware.RecordEmailSend("confirmation", "error")
				uc.Log.Errorw("confirmation email failed", "to", sub.Email, "error", err)
				return
			}
			middleware.RecordEmailSend("confirmation", "sent")
		}()
	}

	wg.Wait()
}
