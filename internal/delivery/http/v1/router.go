package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-ats-backend/config"
	"go-ats-backend/internal/delivery/http/middleware"
	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
)

type RouterDeps struct {
	ResumeUC    domain.ResumeUsecase
	CandidateUC domain.CandidateUsecase
	DashboardUC domain.DashboardUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Saved resumes are served straight off disk
	r.Static("/uploads", deps.Config.UploadDir)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Tenant-scoped routes
	scoped := v1.Group("")
	scoped.Use(middleware.Tenant(deps.Config.DefaultOrganizationID))
	{
		uploads := scoped.Group("")
		uploads.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window)))
		NewResumeHandler(uploads, deps.ResumeUC)

		NewCandidateHandler(scoped, deps.CandidateUC)
		NewDashboardHandler(scoped, deps.DashboardUC)
	}

	return r
}
