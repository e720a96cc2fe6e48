package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-landdeals-backend/internal/domain"
	"go-landdeals-backend/pkg/email"
	"go-landdeals-backend/pkg/validation"
)

type enquiryUsecase struct {
	notifier domain.Notifier
	validate *validator.Validate
}

// NewEnquiryUsecase creates the contact form controller. The custom
// enquiry_email/enquiry_phone validators are registered on the given
// validator instance.
func NewEnquiryUsecase(notifier domain.Notifier, validate *validator.Validate) domain.EnquiryUsecase {
	validation.RegisterValidators(validate)
	return &enquiryUsecase{notifier: notifier, validate: validate}
}

// InitDraft builds the draft a freshly opened contact form starts from.
// When the session carries an enquiry listing, the listing name is prefilled
// and the message is seeded so the visitor only has to add details.
func (uc *enquiryUsecase) InitDraft(nav domain.NavigationState) domain.EnquiryDraft {
	draft := domain.EnquiryDraft{Subject: domain.SubjectGeneral}
	if nav.EnquiryListing != "" {
		draft.ListingName = nav.EnquiryListing
		draft.Subject = domain.SubjectProperty
		draft.Message = "I'm interested in " + nav.EnquiryListing + ". "
	}
	return draft
}

// Submit runs the submission pipeline: required fields, email syntax, phone
// syntax, then dispatch. It short-circuits on the first failure and never
// touches the draft, so a failed attempt leaves the form exactly as the
// visitor filled it.
func (uc *enquiryUsecase) Submit(ctx context.Context, draft *domain.EnquiryDraft) domain.SubmitOutcome {
	if result := uc.validateDraft(draft); !result.OK {
		return domain.SubmitOutcome{
			Status:      domain.SubmitValidationFailed,
			FieldErrors: result.FieldErrors,
		}
	}

	rec := buildRecord(draft)
	if err := uc.notifier.Send(ctx, rec); err != nil {
		return domain.SubmitOutcome{
			Status:       domain.SubmitNotifyFailed,
			NotifyReason: classifyNotifyError(err),
			Err:          err,
		}
	}

	return domain.SubmitOutcome{Status: domain.SubmitOK}
}

// validateDraft applies the submission checks in order: presence first,
// then email format, then phone format.
func (uc *enquiryUsecase) validateDraft(draft *domain.EnquiryDraft) domain.ValidationResult {
	fieldErrors := map[string]string{}

	required := []struct{ field, value string }{
		{"name", draft.Name},
		{"email", draft.Email},
		{"phone", draft.Phone},
		{"message", draft.Message},
	}
	for _, r := range required {
		if err := uc.validate.Var(strings.TrimSpace(r.value), "required"); err != nil {
			fieldErrors[r.field] = "This field is required."
		}
	}
	if len(fieldErrors) > 0 {
		return domain.ValidationResult{FieldErrors: fieldErrors}
	}

	if err := uc.validate.Var(draft.Email, "enquiry_email"); err != nil {
		fieldErrors["email"] = "Please enter a valid email address."
		return domain.ValidationResult{FieldErrors: fieldErrors}
	}
	if err := uc.validate.Var(draft.Phone, "enquiry_phone"); err != nil {
		fieldErrors["phone"] = "Please enter a valid 10-digit Indian phone number."
		return domain.ValidationResult{FieldErrors: fieldErrors}
	}

	return domain.ValidationResult{OK: true}
}

// buildRecord normalizes the draft into the notification payload, resolving
// an empty listing to the general-enquiry label.
func buildRecord(draft *domain.EnquiryDraft) domain.NotificationRecord {
	listing := draft.ListingName
	if listing == "" {
		listing = "General Enquiry"
	}
	subject := draft.Subject
	if !subject.Valid() {
		subject = domain.SubjectGeneral
	}
	return domain.NotificationRecord{
		ListingName: listing,
		Name:        strings.TrimSpace(draft.Name),
		Email:       strings.TrimSpace(draft.Email),
		Phone:       draft.Phone,
		Subject:     subject,
		Message:     draft.Message,
	}
}

func classifyNotifyError(err error) domain.NotifyReason {
	switch {
	case errors.Is(err, email.ErrConfigIncomplete):
		return domain.NotifyConfigIncomplete
	case errors.Is(err, email.ErrAuthenticationFailed):
		return domain.NotifyAuthenticationFailed
	default:
		return domain.NotifyTransportFailure
	}
}
