package email

import (
	"context"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-landdeals-backend/config"
	"go-landdeals-backend/internal/domain"
)

func completeConfig() config.NotifierConfig {
	return config.NotifierConfig{
		Host:      "smtp.gmail.com",
		Port:      "587",
		Sender:    "agent@himachallanddeals.com",
		Recipient: "office@himachallanddeals.com",
		Password:  "app-password",
	}
}

func sampleRecord() domain.NotificationRecord {
	return domain.NotificationRecord{
		ListingName: "Premium Hilltop Land - Shimla",
		Name:        "Asha Sharma",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		Subject:     domain.SubjectProperty,
		Message:     "Please share the brochure.",
	}
}

func TestSendFailsFastOnIncompleteConfig(t *testing.T) {
	for _, clear := range []func(*config.NotifierConfig){
		func(c *config.NotifierConfig) { c.Host = "" },
		func(c *config.NotifierConfig) { c.Port = "" },
		func(c *config.NotifierConfig) { c.Sender = "" },
		func(c *config.NotifierConfig) { c.Recipient = "" },
		func(c *config.NotifierConfig) { c.Password = "" },
	} {
		cfg := completeConfig()
		clear(&cfg)
		n := NewNotifier(cfg)

		assert.False(t, n.IsConfigured())
		// No connection is attempted, so this returns immediately even
		// though the endpoint is unreachable.
		err := n.Send(context.Background(), sampleRecord())
		assert.ErrorIs(t, err, ErrConfigIncomplete)
	}
}

func TestComposeMessage(t *testing.T) {
	n := NewNotifier(completeConfig())

	msg, err := n.composeMessage(sampleRecord())
	require.NoError(t, err)

	s := string(msg)
	assert.Contains(t, s, "From: agent@himachallanddeals.com")
	assert.Contains(t, s, "To: office@himachallanddeals.com")
	assert.Contains(t, s, "Reply-To: asha@example.com")
	assert.Contains(t, s, "Subject: New Property Enquiry - Premium Hilltop Land - Shimla")
	assert.Contains(t, s, "Content-Type: text/html")
	assert.Contains(t, s, "Premium Hilltop Land - Shimla")
	assert.Contains(t, s, "Asha Sharma")
	assert.Contains(t, s, "9876543210")
	assert.Contains(t, s, "Please share the brochure.")
}

func TestComposeMessageEscapesHTML(t *testing.T) {
	n := NewNotifier(completeConfig())

	rec := sampleRecord()
	rec.Message = `<script>alert("x")</script>`
	msg, err := n.composeMessage(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(msg), "<script>")
}

func TestIsAuthRejection(t *testing.T) {
	assert.True(t, isAuthRejection(&textproto.Error{Code: 535, Msg: "Username and Password not accepted"}))
	assert.True(t, isAuthRejection(&textproto.Error{Code: 530, Msg: "Authentication required"}))
	assert.True(t, isAuthRejection(&textproto.Error{Code: 534, Msg: "Application-specific password required"}))
	assert.False(t, isAuthRejection(&textproto.Error{Code: 421, Msg: "Service not available"}))
	assert.False(t, isAuthRejection(context.DeadlineExceeded))
}

func TestSubjectLineGeneralFallback(t *testing.T) {
	rec := domain.NotificationRecord{}
	assert.Equal(t, "New Property Enquiry - General", rec.SubjectLine())
}
