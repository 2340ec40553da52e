package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "jobtrack-backend/internal/auth"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/matching"
	"jobtrack-backend/internal/resumes"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
	"jobtrack-backend/internal/users"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	Users           *users.Service
	JobsHandler     *jobs.Handler
	ResumesHandler  *resumes.Handler
	MatchingHandler *matching.Handler
	GoogleAuth      *googleauth.GoogleService
	FileStore       SignedFileStore
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
		middleware.Auth(deps.Users),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)
	if deps.FileStore != nil {
		registerFileRoutes(api, deps.FileStore)
	}
	deps.JobsHandler.RegisterRoutes(api)
	deps.ResumesHandler.RegisterRoutes(api)
	deps.MatchingHandler.RegisterRoutes(api)

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
