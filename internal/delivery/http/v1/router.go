package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-landdeals-backend/config"
	"go-landdeals-backend/internal/delivery/http/middleware"
	"go-landdeals-backend/internal/delivery/http/response"
	"go-landdeals-backend/internal/domain"
	"go-landdeals-backend/internal/session"
)

type RouterDeps struct {
	ListingUC domain.ListingUsecase
	EnquiryUC domain.EnquiryUsecase
	Sessions  *session.Store
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Static content (no session needed)
	NewSiteHandler(v1, deps.ListingUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Session-scoped routes
	scoped := v1.Group("")
	scoped.Use(middleware.SessionMiddleware(deps.Sessions))
	{
		NewNavigationHandler(scoped)

		submitLimit := middleware.RateLimitMiddleware(
			middleware.EnquiryRateLimitConfig(deps.Config.RateLimitEnquireThreshold, window))
		NewEnquiryHandler(scoped, submitLimit, deps.EnquiryUC)
	}

	return r
}
