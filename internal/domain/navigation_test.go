package domain_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-landdeals-backend/internal/domain"
)

func TestNewNavigationState(t *testing.T) {
	nav := domain.NewNavigationState()
	assert.Equal(t, domain.SectionHome, nav.ActiveSection)
	assert.Empty(t, nav.EnquiryListing)
	assert.False(t, nav.Submitted)
}

func TestStartEnquiry(t *testing.T) {
	nav := domain.NewNavigationState()
	nav.SelectSection(domain.SectionProperties)
	nav.StartEnquiry("Plot A")

	assert.Equal(t, domain.SectionContact, nav.ActiveSection)
	assert.Equal(t, "Plot A", nav.EnquiryListing)
	assert.False(t, nav.Submitted)

	q := nav.EncodeQuery()
	assert.Equal(t, "true", q.Get("enquire"))
	assert.Equal(t, "Plot A", q.Get("property"))
	assert.Equal(t, "Contact", q.Get("tab"))
}

func TestSubmitSuccessGuard(t *testing.T) {
	t.Run("only valid on the contact form", func(t *testing.T) {
		nav := domain.NewNavigationState()
		assert.ErrorIs(t, nav.SubmitSuccess(), domain.ErrNotInContactForm)
		assert.False(t, nav.Submitted)
	})

	t.Run("not twice", func(t *testing.T) {
		nav := domain.NewNavigationState()
		nav.StartEnquiry("Plot A")
		require.NoError(t, nav.SubmitSuccess())
		assert.True(t, nav.Submitted)
		assert.ErrorIs(t, nav.SubmitSuccess(), domain.ErrNotInContactForm)
	})
}

func TestSelectSectionClearsStaleConfirmation(t *testing.T) {
	nav := domain.NewNavigationState()
	nav.StartEnquiry("Plot A")
	require.NoError(t, nav.SubmitSuccess())

	// Navigating away must not leave a submitted flag behind that could
	// drag the user back to the confirmation view.
	nav.SelectSection(domain.SectionHome)
	assert.Equal(t, domain.SectionHome, nav.ActiveSection)
	assert.False(t, nav.Submitted)
	assert.Empty(t, nav.EnquiryListing)
}

func TestResetForNewEnquiry(t *testing.T) {
	nav := domain.NewNavigationState()
	assert.ErrorIs(t, nav.ResetForNewEnquiry(), domain.ErrNotSubmitted)

	nav.StartEnquiry("Plot A")
	require.NoError(t, nav.SubmitSuccess())
	require.NoError(t, nav.ResetForNewEnquiry())

	assert.Equal(t, domain.SectionContact, nav.ActiveSection)
	assert.Empty(t, nav.EnquiryListing)
	assert.False(t, nav.Submitted)
}

func TestDecodeQueryFallbacks(t *testing.T) {
	t.Run("unknown tab falls back to Home", func(t *testing.T) {
		nav := domain.DecodeRawQuery("tab=Dashboard")
		assert.Equal(t, domain.SectionHome, nav.ActiveSection)
	})

	t.Run("malformed query yields the default state", func(t *testing.T) {
		nav := domain.DecodeRawQuery("tab=%zz")
		assert.Equal(t, domain.NewNavigationState(), nav)
	})

	t.Run("enquire forces Contact", func(t *testing.T) {
		nav := domain.DecodeRawQuery("tab=Properties&enquire=true&property=Plot+A")
		assert.Equal(t, domain.SectionContact, nav.ActiveSection)
		assert.Equal(t, "Plot A", nav.EnquiryListing)
		assert.False(t, nav.Submitted)
	})

	t.Run("submitted honoured only on Contact", func(t *testing.T) {
		nav := domain.DecodeRawQuery("tab=Home&submitted=true&property=Plot+A")
		assert.Equal(t, domain.SectionHome, nav.ActiveSection)
		assert.False(t, nav.Submitted)
		assert.Empty(t, nav.EnquiryListing)
	})

	t.Run("property alone is ignored", func(t *testing.T) {
		nav := domain.DecodeRawQuery("tab=Contact&property=Plot+A")
		assert.Empty(t, nav.EnquiryListing)
	})
}

// TestEncodeDecodeRoundTrip drives the state machine through random
// transition sequences and checks that decoding the canonical query always
// reproduces the exact state.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	sections := []domain.Section{
		domain.SectionHome, domain.SectionProperties,
		domain.SectionAbout, domain.SectionContact,
	}
	listings := []string{
		"Plot A", "Forest Facing Plots - Manali", "Premium Hilltop Land - Shimla",
	}

	rapid.Check(t, func(rt *rapid.T) {
		nav := domain.NewNavigationState()

		numOps := rapid.IntRange(0, 30).Draw(rt, "numOps")
		for i := 0; i < numOps; i++ {
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				nav.SelectSection(rapid.SampledFrom(sections).Draw(rt, "section"))
			case 1:
				nav.StartEnquiry(rapid.SampledFrom(listings).Draw(rt, "listing"))
			case 2:
				_ = nav.SubmitSuccess()
			case 3:
				_ = nav.ResetForNewEnquiry()
			}

			// Invariant: submitted implies the Contact section is active.
			if nav.Submitted && nav.ActiveSection != domain.SectionContact {
				rt.Fatalf("submitted while on %s", nav.ActiveSection)
			}

			decoded := domain.DecodeQuery(nav.EncodeQuery())
			if decoded != nav {
				rt.Fatalf("round trip mismatch: %+v != %+v", decoded, nav)
			}

			// The encoding is order-independent: re-parsing the serialized
			// form must decode identically.
			reparsed, err := url.ParseQuery(nav.EncodeQuery().Encode())
			if err != nil {
				rt.Fatalf("canonical query failed to parse: %v", err)
			}
			if domain.DecodeQuery(reparsed) != nav {
				rt.Fatalf("serialized round trip mismatch for %+v", nav)
			}
		}
	})
}
