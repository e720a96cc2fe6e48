package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld: local allows letters/digits and ._%+-, domain allows
	// letters/digits and .-, TLD is at least two letters. Syntactic check
	// only, no DNS lookup.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Indian mobile number: exactly 10 bare digits, first digit 6-9.
	// No separators, spaces, or country code.
	phoneRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// IsValidEmail reports whether s is a syntactically valid email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone reports whether s is a valid 10-digit Indian mobile number.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("enquiry_email", EnquiryEmail)
	_ = v.RegisterValidation("enquiry_phone", EnquiryPhone)
}

// EnquiryEmail adapts IsValidEmail for struct-tag validation. Empty values
// pass; pair with required where the field is mandatory.
func EnquiryEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsValidEmail(val)
}

// EnquiryPhone adapts IsValidPhone for struct-tag validation.
func EnquiryPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsValidPhone(val)
}
