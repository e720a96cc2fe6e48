package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-landdeals-backend/internal/delivery/http/middleware"
	"go-landdeals-backend/internal/delivery/http/response"
	"go-landdeals-backend/internal/domain"
	"go-landdeals-backend/pkg/apperror"
)

// NavStatePayload is the navigation state plus its canonical query string,
// which the frontend writes into the address bar.
type NavStatePayload struct {
	State domain.NavigationState `json:"state"`
	Query string                 `json:"query"`
}

func navPayload(state domain.NavigationState) NavStatePayload {
	return NavStatePayload{
		State: state,
		Query: state.EncodeQuery().Encode(),
	}
}

type NavigationHandler struct{}

// NewNavigationHandler registers the session navigation routes.
func NewNavigationHandler(rg *gin.RouterGroup) {
	handler := &NavigationHandler{}

	rg.GET("/session", handler.Current)
	rg.PUT("/session", handler.Sync)
	rg.POST("/session/navigate", handler.Navigate)
	rg.POST("/session/enquire", handler.Enquire)
	rg.POST("/session/reset", handler.Reset)
}

// Current godoc
// @Summary      Current navigation state
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  response.Response{data=v1.NavStatePayload}
// @Router       /session [get]
func (h *NavigationHandler) Current(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	response.Success(c, http.StatusOK, "Navigation state", navPayload(sess.Nav()))
}

// Sync godoc
// @Summary      Sync navigation state from a shared URL
// @Description  Applies tab/enquire/property query parameters to the session, reproducing the state the URL encodes. Unknown tabs fall back to Home.
// @Tags         navigation
// @Produce      json
// @Param        tab       query     string  false  "Section name"
// @Param        enquire   query     string  false  "true to open a prefilled enquiry"
// @Param        property  query     string  false  "Listing name, meaningful with enquire=true"
// @Success      200       {object}  response.Response{data=v1.NavStatePayload}
// @Router       /session [put]
func (h *NavigationHandler) Sync(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	decoded := domain.DecodeQuery(c.Request.URL.Query())
	_ = sess.Update(func(n *domain.NavigationState) error {
		*n = decoded
		return nil
	})
	response.Success(c, http.StatusOK, "Navigation state synced", navPayload(sess.Nav()))
}

type navigateRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// Navigate godoc
// @Summary      Activate a section tab
// @Description  Leaving the contact confirmation clears the submitted flag and any enquiry prefill.
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      v1.navigateRequest  true  "Target tab"
// @Success      200   {object}  response.Response{data=v1.NavStatePayload}
// @Failure      400   {object}  response.Response
// @Router       /session/navigate [post]
func (h *NavigationHandler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Unknown tabs degrade to Home rather than erroring.
	section, _ := domain.ParseSection(req.Tab)

	sess := middleware.CurrentSession(c)
	_ = sess.Update(func(n *domain.NavigationState) error {
		n.SelectSection(section)
		return nil
	})
	response.Success(c, http.StatusOK, "Section selected", navPayload(sess.Nav()))
}

type enquireRequest struct {
	Property string `json:"property" binding:"required"`
}

// Enquire godoc
// @Summary      Start a listing enquiry
// @Description  Jumps to the Contact section prefilled for the named listing. The returned query is the shareable URL encoding of the new state.
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      v1.enquireRequest  true  "Listing to enquire about"
// @Success      200   {object}  response.Response{data=v1.NavStatePayload}
// @Failure      400   {object}  response.Response
// @Router       /session/enquire [post]
func (h *NavigationHandler) Enquire(c *gin.Context) {
	var req enquireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	sess := middleware.CurrentSession(c)
	_ = sess.Update(func(n *domain.NavigationState) error {
		n.StartEnquiry(req.Property)
		return nil
	})
	response.Success(c, http.StatusOK, "Enquiry started", navPayload(sess.Nav()))
}

// Reset godoc
// @Summary      Reset after a submitted enquiry
// @Description  Returns from the confirmation view to a blank contact form. Only valid while an enquiry is submitted.
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  response.Response{data=v1.NavStatePayload}
// @Failure      409  {object}  response.Response
// @Router       /session/reset [post]
func (h *NavigationHandler) Reset(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	err := sess.Update(func(n *domain.NavigationState) error {
		return n.ResetForNewEnquiry()
	})
	if err != nil {
		c.Error(apperror.Conflict("No submitted enquiry to reset"))
		return
	}
	response.Success(c, http.StatusOK, "Ready for a new enquiry", navPayload(sess.Nav()))
}
