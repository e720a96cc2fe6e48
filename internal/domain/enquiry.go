package domain

import "context"

// Subject is the enquiry category picked on the contact form. Wire values
// match the labels shown in the form's dropdown.
type Subject string

const (
	SubjectGeneral     Subject = "General Inquiry"
	SubjectProperty    Subject = "Property Inquiry"
	SubjectAppointment Subject = "Appointment Request"
	SubjectOther       Subject = "Other"
)

// Valid reports whether s is one of the known subject choices.
func (s Subject) Valid() bool {
	switch s {
	case SubjectGeneral, SubjectProperty, SubjectAppointment, SubjectOther:
		return true
	}
	return false
}

// EnquiryDraft is one in-flight contact form interaction. It lives for a
// single form session and is discarded after a successful send; it is never
// persisted.
// Field-level validation happens in the form controller, not at binding
// time, so failed attempts come back as per-field errors instead of a
// rejected request.
type EnquiryDraft struct {
	ListingName string  `json:"listing_name,omitempty"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Subject     Subject `json:"subject"`
	Message     string  `json:"message"`
}

// ValidationResult carries per-field validation errors for one submission
// attempt. Produced fresh each attempt, never retained.
type ValidationResult struct {
	OK          bool              `json:"ok"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// NotificationRecord is the normalized payload handed to the Notifier. The
// listing name is already resolved ("General Enquiry" when the draft had
// none), so the record is self-contained.
type NotificationRecord struct {
	ListingName string
	Name        string
	Email       string
	Phone       string
	Subject     Subject
	Message     string
}

// SubjectLine builds the operator-facing mail subject.
func (r NotificationRecord) SubjectLine() string {
	name := r.ListingName
	if name == "" {
		name = "General"
	}
	return "New Property Enquiry - " + name
}

// Notifier dispatches an enquiry to the operator's notification channel.
// Each call is a fresh dispatch attempt; no retry or deduplication happens
// inside, and errors are always reported to the caller.
type Notifier interface {
	Send(ctx context.Context, rec NotificationRecord) error
}

// SubmitStatus enumerates the possible outcomes of a submission attempt.
type SubmitStatus string

const (
	SubmitOK               SubmitStatus = "success"
	SubmitValidationFailed SubmitStatus = "validation_failed"
	SubmitNotifyFailed     SubmitStatus = "notify_failed"
)

// NotifyReason classifies a failed dispatch for user-facing messaging.
type NotifyReason string

const (
	NotifyConfigIncomplete     NotifyReason = "config_incomplete"
	NotifyAuthenticationFailed NotifyReason = "authentication_failed"
	NotifyTransportFailure     NotifyReason = "transport_failure"
)

// SubmitOutcome is the result of EnquiryUsecase.Submit. Exactly one of the
// failure payloads is populated depending on Status.
type SubmitOutcome struct {
	Status       SubmitStatus
	FieldErrors  map[string]string
	NotifyReason NotifyReason
	Err          error
}

// EnquiryUsecase is the contact form controller.
type EnquiryUsecase interface {
	// InitDraft builds a fresh draft from the session's navigation context,
	// prefilling the listing name and seeding the message when the enquiry
	// was started from a listing.
	InitDraft(nav NavigationState) EnquiryDraft

	// Submit validates the draft and, if it passes, dispatches it through
	// the Notifier. The draft is never modified: on any failure the caller
	// keeps it as-is for correction and resubmission.
	Submit(ctx context.Context, draft *EnquiryDraft) SubmitOutcome
}
