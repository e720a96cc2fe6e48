package domain

import (
	"errors"
	"net/url"
)

// Section identifies one of the site's top-level tabs.
type Section string

const (
	SectionHome       Section = "Home"
	SectionProperties Section = "Properties"
	SectionAbout      Section = "About"
	SectionContact    Section = "Contact"
)

// ParseSection maps a raw tab value to a known Section. Unknown values
// report ok=false; callers fall back to Home rather than erroring.
func ParseSection(s string) (Section, bool) {
	switch Section(s) {
	case SectionHome, SectionProperties, SectionAbout, SectionContact:
		return Section(s), true
	}
	return SectionHome, false
}

var (
	// ErrNotInContactForm is returned by SubmitSuccess outside the Contact
	// form sub-state.
	ErrNotInContactForm = errors.New("navigation: submit is only valid on the contact form")

	// ErrNotSubmitted is returned by ResetForNewEnquiry before a successful
	// submission.
	ErrNotSubmitted = errors.New("navigation: no submitted enquiry to reset")
)

// NavigationState is the per-session navigation value. It is mutated only
// through its transition methods; one instance exists per session and is
// never shared across sessions.
//
// Invariants: Submitted implies ActiveSection == SectionContact, and
// EnquiryListing is non-empty only when the current contact interaction was
// initiated from a listing.
type NavigationState struct {
	ActiveSection  Section `json:"tab"`
	EnquiryListing string  `json:"property,omitempty"`
	Submitted      bool    `json:"submitted"`
}

// NewNavigationState returns the session-start state: Home, no enquiry
// context, nothing submitted.
func NewNavigationState() NavigationState {
	return NavigationState{ActiveSection: SectionHome}
}

// SelectSection activates a tab. Leaving Contact abandons the enquiry
// context entirely: both the submitted flag and the prefill listing are
// cleared, so a stale confirmation can never resurface on another tab.
func (n *NavigationState) SelectSection(s Section) {
	if s != SectionContact {
		n.Submitted = false
		n.EnquiryListing = ""
	}
	n.ActiveSection = s
}

// StartEnquiry jumps to the Contact form prefilled for the named listing.
// Valid from any state.
func (n *NavigationState) StartEnquiry(listing string) {
	n.ActiveSection = SectionContact
	n.EnquiryListing = listing
	n.Submitted = false
}

// SubmitSuccess records a successful enquiry submission, moving Contact into
// its confirmation sub-state.
func (n *NavigationState) SubmitSuccess() error {
	if n.ActiveSection != SectionContact || n.Submitted {
		return ErrNotInContactForm
	}
	n.Submitted = true
	return nil
}

// ResetForNewEnquiry leaves the confirmation sub-state, returning to a blank
// contact form with no prefill.
func (n *NavigationState) ResetForNewEnquiry() error {
	if !n.Submitted {
		return ErrNotSubmitted
	}
	n.Submitted = false
	n.EnquiryListing = ""
	return nil
}

// Query parameter names shared by EncodeQuery and DecodeQuery.
const (
	paramTab       = "tab"
	paramEnquire   = "enquire"
	paramProperty  = "property"
	paramSubmitted = "submitted"
)

// EncodeQuery renders the state as its canonical, order-independent query
// representation. An in-progress prefilled enquiry carries enquire=true and
// the listing name; the confirmation sub-state carries submitted=true
// instead, so the two Contact sub-states never collide.
func (n NavigationState) EncodeQuery() url.Values {
	v := url.Values{}
	v.Set(paramTab, string(n.ActiveSection))
	if n.EnquiryListing != "" {
		v.Set(paramProperty, n.EnquiryListing)
	}
	switch {
	case n.Submitted:
		v.Set(paramSubmitted, "true")
	case n.EnquiryListing != "" && n.ActiveSection == SectionContact:
		v.Set(paramEnquire, "true")
	}
	return v
}

// DecodeQuery rebuilds a NavigationState from query parameters. Decoding is
// total: unknown tabs fall back to Home, and property/submitted values are
// honoured only in the combinations EncodeQuery produces, so
// DecodeQuery(EncodeQuery(s)) == s for every reachable state.
func DecodeQuery(v url.Values) NavigationState {
	n := NewNavigationState()
	if sect, ok := ParseSection(v.Get(paramTab)); ok {
		n.ActiveSection = sect
	}

	if v.Get(paramEnquire) == "true" {
		n.StartEnquiry(v.Get(paramProperty))
		return n
	}

	if n.ActiveSection == SectionContact && v.Get(paramSubmitted) == "true" {
		n.EnquiryListing = v.Get(paramProperty)
		n.Submitted = true
	}
	return n
}

// DecodeRawQuery is DecodeQuery over an unparsed query string. A malformed
// query degrades to the default state.
func DecodeRawQuery(raw string) NavigationState {
	v, err := url.ParseQuery(raw)
	if err != nil {
		return NewNavigationState()
	}
	return DecodeQuery(v)
}
