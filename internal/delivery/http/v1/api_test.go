package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-landdeals-backend/config"
	v1 "go-landdeals-backend/internal/delivery/http/v1"
	"go-landdeals-backend/internal/domain"
	"go-landdeals-backend/internal/session"
	"go-landdeals-backend/internal/usecase"
	"go-landdeals-backend/pkg/email"
	"go-landdeals-backend/pkg/logger"
)

// stubNotifier counts dispatches and fails with err when set.
type stubNotifier struct {
	mu    sync.Mutex
	err   error
	sends []domain.NotificationRecord
}

func (s *stubNotifier) Send(_ context.Context, rec domain.NotificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sends = append(s.sends, rec)
	return nil
}

func newTestRouter(t *testing.T, notifier domain.Notifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	cfg := &config.Config{
		Port:                      "8080",
		ContactEmail:              "contact@example.com",
		OfficeAddress:             "Solan, Himachal Pradesh",
		RateLimitWindowSeconds:    60,
		RateLimitEnquireThreshold: 50,
		RateLimitGlobalThreshold:  1000,
	}

	return v1.NewRouter(v1.RouterDeps{
		ListingUC: usecase.NewListingUsecase(cfg),
		EnquiryUC: usecase.NewEnquiryUsecase(notifier, validator.New()),
		Sessions:  session.NewStore(time.Hour),
		Config:    cfg,
	})
}

// client keeps the session cookie across requests, mimicking a browser tab.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if got := w.Result().Cookies(); len(got) > 0 {
		c.cookies = got
	}
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
		Error   interface{}            `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestStaticContentRoutes(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &stubNotifier{})}

	w := c.do(http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/v1/listings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Forest Facing Plots - Manali")

	w = c.do(http.MethodGet, "/v1/listings?featured=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Forest Facing Plots - Manali")

	w = c.do(http.MethodGet, "/v1/site", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contact@example.com")

	w = c.do(http.MethodGet, "/v1/content/Home", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/v1/content/Blog", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnquiryWorkflow(t *testing.T) {
	notifier := &stubNotifier{}
	c := &client{t: t, router: newTestRouter(t, notifier)}

	// Fresh session starts at Home.
	w := c.do(http.MethodGet, "/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	state := data["state"].(map[string]interface{})
	assert.Equal(t, "Home", state["tab"])

	// Browse properties, then enquire about a listing.
	w = c.do(http.MethodPost, "/v1/session/navigate", gin.H{"tab": "Properties"})
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/v1/session/enquire", gin.H{"property": "Forest Facing Plots - Manali"})
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, "enquire=true&property=Forest+Facing+Plots+-+Manali&tab=Contact", data["query"])

	// The draft comes back prefilled.
	w = c.do(http.MethodGet, "/v1/enquiry/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var draftEnvelope struct {
		Data domain.EnquiryDraft `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draftEnvelope))
	draft := draftEnvelope.Data
	assert.Equal(t, "Forest Facing Plots - Manali", draft.ListingName)
	assert.Equal(t, "I'm interested in Forest Facing Plots - Manali. ", draft.Message)

	// Submit with the required fields filled in.
	draft.Name = "Asha Sharma"
	draft.Email = "asha@example.com"
	draft.Phone = "9876543210"
	w = c.do(http.MethodPost, "/v1/enquiry", draft)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, "Forest Facing Plots - Manali", data["enquired_about"])

	require.Len(t, notifier.sends, 1)
	assert.Equal(t, "Forest Facing Plots - Manali", notifier.sends[0].ListingName)

	// Session landed on the confirmation sub-state.
	w = c.do(http.MethodGet, "/v1/session", nil)
	data = decodeData(t, w)
	state = data["state"].(map[string]interface{})
	assert.Equal(t, "Contact", state["tab"])
	assert.Equal(t, true, state["submitted"])

	// Reset returns to a blank contact form.
	w = c.do(http.MethodPost, "/v1/session/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	state = data["state"].(map[string]interface{})
	assert.Equal(t, "Contact", state["tab"])
	assert.Equal(t, false, state["submitted"])
	assert.Nil(t, state["property"])

	// A second reset has nothing to reset.
	w = c.do(http.MethodPost, "/v1/session/reset", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEnquiryValidationFailure(t *testing.T) {
	notifier := &stubNotifier{}
	c := &client{t: t, router: newTestRouter(t, notifier)}

	w := c.do(http.MethodPost, "/v1/enquiry", gin.H{
		"name":    "Asha Sharma",
		"email":   "asha@example.com",
		"message": "Hello",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "phone")
	assert.Empty(t, notifier.sends)
}

func TestEnquiryDispatchFailure(t *testing.T) {
	t.Run("rejected credential maps to 502", func(t *testing.T) {
		c := &client{t: t, router: newTestRouter(t, &stubNotifier{err: email.ErrAuthenticationFailed})}

		w := c.do(http.MethodPost, "/v1/enquiry", validSubmission())
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "contact us directly")
	})

	t.Run("missing configuration maps to 503", func(t *testing.T) {
		c := &client{t: t, router: newTestRouter(t, &stubNotifier{err: email.ErrConfigIncomplete})}

		w := c.do(http.MethodPost, "/v1/enquiry", validSubmission())
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func validSubmission() gin.H {
	return gin.H{
		"name":    "Asha Sharma",
		"email":   "asha@example.com",
		"phone":   "9876543210",
		"subject": "General Inquiry",
		"message": "Hello",
	}
}

func TestSessionSyncFromSharedURL(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &stubNotifier{})}

	w := c.do(http.MethodPut, "/v1/session?tab=Contact&enquire=true&property=Plot+A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	state := data["state"].(map[string]interface{})
	assert.Equal(t, "Contact", state["tab"])
	assert.Equal(t, "Plot A", state["property"])
	assert.Equal(t, false, state["submitted"])

	// Unknown tabs degrade to Home.
	w = c.do(http.MethodPut, "/v1/session?tab=Dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	state = data["state"].(map[string]interface{})
	assert.Equal(t, "Home", state["tab"])
}
