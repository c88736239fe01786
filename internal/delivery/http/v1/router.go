package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AdminUC     domain.AdminUsecase
	RecruiterUC domain.RecruiterUsecase
	UserUC      domain.UserUsecase
	JobUC       domain.JobUsecase
	VisitorUC   domain.VisitorUsecase
	Tokens      *auth.TokenService
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must be first; ErrorHandler last so it
	// sees every error pushed by the handlers below it.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(middleware.SecurityHeaders())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.VisitorTracker(deps.VisitorUC))
	r.Use(middleware.ErrorHandler(deps.Config.IsDevelopment()))

	loginLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitLoginThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	})

	adminGuard := middleware.RequireAdmin(deps.Tokens)
	recruiterGuard := middleware.RequireRecruiter(deps.Tokens)
	userGuard := middleware.RequireUser(deps.Tokens)

	root := r.Group("")

	root.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewAdminHandler(root, adminGuard, loginLimiter, deps.AdminUC, deps.JobUC)
	NewRecruiterHandler(root, recruiterGuard, loginLimiter, deps.RecruiterUC)
	NewUserHandler(root, userGuard, loginLimiter, deps.UserUC)
	NewJobHandler(root, recruiterGuard, deps.JobUC)

	return r
}
