package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/ats"
	googleauth "roleready-backend/internal/auth"
	"roleready-backend/internal/generator"
	"roleready-backend/internal/resumes"
	"roleready-backend/internal/shared/config"
	"roleready-backend/internal/shared/metrics"
	"roleready-backend/internal/shared/server/middleware"
	"roleready-backend/internal/shared/server/respond"
	"roleready-backend/internal/transfer"
	"roleready-backend/internal/users"
	"roleready-backend/internal/validation"
)

// RouterDeps carries the handlers the router wires up. Nil handlers are
// skipped so tests can build partial routers.
type RouterDeps struct {
	Config            config.Config
	ResumesHandler    *resumes.Handler
	ATSHandler        *ats.Handler
	GeneratorHandler  *generator.Handler
	TransferHandler   *transfer.Handler
	ValidationHandler *validation.Handler
	UsersHandler      *users.Handler
	GoogleAuth        *googleauth.GoogleService
	RateLimit         *middleware.RateLimitConfig
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.RateLimit != nil {
		r.Use(middleware.RateLimit(*deps.RateLimit))
	}
	r.Use(middleware.Auth(deps.Config.Env))

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.ATSHandler != nil {
		deps.ATSHandler.RegisterRoutes(api)
	}
	if deps.GeneratorHandler != nil {
		deps.GeneratorHandler.RegisterRoutes(api)
	}
	if deps.TransferHandler != nil {
		deps.TransferHandler.RegisterRoutes(api)
	}
	if deps.ValidationHandler != nil {
		deps.ValidationHandler.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}

	return r
}

// DefaultRateLimit returns the shipping rate-limit policy: generation and
// matching are the expensive routes, everything else rides the default rule.
func DefaultRateLimit() *middleware.RateLimitConfig {
	return &middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"GENERATE": {Rate: 2, Burst: 5},
			"MATCH":    {Rate: 5, Burst: 10},
			"DEFAULT":  {Rate: 25, Burst: 50},
		},
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			path := c.FullPath()
			switch {
			case path == "/api/v1/generate" || path == "/api/v1/generate/detect":
				return "GENERATE"
			case path == "/api/v1/ats/match":
				return "MATCH"
			default:
				return "DEFAULT"
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
