package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-landdeals-backend/internal/delivery/http/response"
	"go-landdeals-backend/internal/domain"
	"go-landdeals-backend/pkg/apperror"
)

type SiteHandler struct {
	listingUC domain.ListingUsecase
}

// NewSiteHandler registers the static content routes (public, no session
// state involved).
func NewSiteHandler(public *gin.RouterGroup, listingUC domain.ListingUsecase) {
	handler := &SiteHandler{listingUC: listingUC}

	public.GET("/site", handler.SiteInfo)
	public.GET("/listings", handler.Listings)
	public.GET("/content/:section", handler.Content)
}

// SiteInfo godoc
// @Summary      Site contact details
// @Description  Office address, phone, email and website shown in the Contact section and footer.
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /site [get]
func (h *SiteHandler) SiteInfo(c *gin.Context) {
	response.Success(c, http.StatusOK, "Site info", h.listingUC.SiteInfo())
}

// Listings godoc
// @Summary      Property catalog
// @Description  All listings for the Properties section. Pass featured=true for the Home section subset.
// @Tags         site
// @Produce      json
// @Param        featured  query     bool  false  "Only featured listings"
// @Success      200       {object}  response.Response
// @Router       /listings [get]
func (h *SiteHandler) Listings(c *gin.Context) {
	if c.Query("featured") == "true" {
		response.Success(c, http.StatusOK, "Featured listings", h.listingUC.Featured())
		return
	}
	response.Success(c, http.StatusOK, "Listings", h.listingUC.Listings())
}

// Content godoc
// @Summary      Static section copy
// @Tags         site
// @Produce      json
// @Param        section  path      string  true  "Section name (Home, About)"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /content/{section} [get]
func (h *SiteHandler) Content(c *gin.Context) {
	section, ok := domain.ParseSection(c.Param("section"))
	if !ok {
		c.Error(apperror.NotFound("Unknown section"))
		return
	}
	content, err := h.listingUC.Content(section)
	if err != nil {
		c.Error(apperror.NotFound("No static content for this section"))
		return
	}
	response.Success(c, http.StatusOK, "Section content", content)
}
