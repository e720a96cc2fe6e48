package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-landdeals-backend/internal/delivery/http/middleware"
	"go-landdeals-backend/internal/delivery/http/response"
	"go-landdeals-backend/internal/domain"
	"go-landdeals-backend/pkg/apperror"
	"go-landdeals-backend/pkg/logger"
)

type EnquiryHandler struct {
	enquiryUC domain.EnquiryUsecase
}

// NewEnquiryHandler registers the enquiry form routes. The submit route is
// rate limited separately because it triggers outbound mail.
func NewEnquiryHandler(public *gin.RouterGroup, submitLimit gin.HandlerFunc, enquiryUC domain.EnquiryUsecase) {
	handler := &EnquiryHandler{enquiryUC: enquiryUC}

	public.GET("/enquiry/draft", handler.Draft)
	public.POST("/enquiry", submitLimit, handler.Submit)
}

// Draft godoc
// @Summary      Fresh enquiry draft
// @Description  Builds the draft the contact form opens with. When the session carries a listing enquiry the listing name and message are prefilled.
// @Tags         enquiry
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EnquiryDraft}
// @Router       /enquiry/draft [get]
func (h *EnquiryHandler) Draft(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	draft := h.enquiryUC.InitDraft(sess.Nav())
	response.Success(c, http.StatusOK, "Enquiry draft", draft)
}

// Submit godoc
// @Summary      Submit the enquiry form
// @Description  Validates the draft and emails it to the operator. On success the session moves to the confirmation state. On any failure the client keeps the draft for correction.
// @Tags         enquiry
// @Accept       json
// @Produce      json
// @Param        enquiry  body      domain.EnquiryDraft  true  "Enquiry form data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /enquiry [post]
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var draft domain.EnquiryDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if draft.Subject != "" && !draft.Subject.Valid() {
		c.Error(apperror.BadRequest("Unknown subject"))
		return
	}

	sess := middleware.CurrentSession(c)
	if draft.ListingName == "" {
		// Server-side navigation state is authoritative for the prefill.
		draft.ListingName = sess.Nav().EnquiryListing
	}

	outcome := h.enquiryUC.Submit(c.Request.Context(), &draft)
	switch outcome.Status {
	case domain.SubmitValidationFailed:
		response.Error(c, http.StatusUnprocessableEntity, "Please fill in all required fields correctly.", outcome.FieldErrors)
		return

	case domain.SubmitNotifyFailed:
		logger.Log.Error("Enquiry dispatch failed",
			"reason", string(outcome.NotifyReason), "error", outcome.Err)
		if outcome.NotifyReason == domain.NotifyConfigIncomplete {
			response.Error(c, http.StatusServiceUnavailable, "Contact service temporarily unavailable.", nil)
			return
		}
		response.Error(c, http.StatusBadGateway, "Failed to send your message. Please try again later or contact us directly.", nil)
		return
	}

	// The notification is out; move the session to the confirmation
	// sub-state. A stale session (double submit) keeps its current state.
	if err := sess.Update(func(n *domain.NavigationState) error {
		n.SelectSection(domain.SectionContact)
		return n.SubmitSuccess()
	}); err != nil {
		logger.Log.Warn("Post-submit transition skipped", "error", err)
	}

	enquired := draft.ListingName
	if enquired == "" {
		enquired = "our properties"
	}
	response.Success(c, http.StatusOK, "Your enquiry has been received!", gin.H{
		"enquired_about": enquired,
		"navigation":     navPayload(sess.Nav()),
	})
}
