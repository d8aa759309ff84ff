package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/analyses"
	"resume-checker/internal/shared/config"
	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/server/middleware"
	"resume-checker/internal/shared/server/respond"
)

// RouterDeps carries everything NewRouter needs wired in.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
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

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	api.Use(middleware.RateLimit(middleware.NewRateLimiter(nil), middleware.RateLimitRule{
		Rate:  2,
		Burst: 60,
	}))

	// Uploads trigger a model call each, so they get a tighter budget than
	// the read endpoints.
	analyzeLimit := middleware.RateLimit(middleware.NewRateLimiter(nil), middleware.RateLimitRule{
		Rate:  0.25,
		Burst: 10,
	})

	deps.AnalysisHandler.RegisterRoutes(api, analyzeLimit)

	return r
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
