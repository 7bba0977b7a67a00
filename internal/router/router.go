package router

import (
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "pulsar/docs"
	"pulsar/internal/config"
	"pulsar/internal/domain"
	"pulsar/internal/handler"
	"pulsar/internal/middleware"
)

// Handlers bundles everything Setup mounts.
type Handlers struct {
	Health      *handler.HealthHandler
	Challenge   *handler.ChallengeHandler
	Submission  *handler.SubmissionHandler
	Vote        *handler.VoteHandler
	Leaderboard *handler.LeaderboardHandler
	Generation  *handler.GenerationHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public routes
	v1.GET("/challenges", h.Challenge.List)
	v1.GET("/challenges/:id", h.Challenge.GetByID)
	v1.GET("/challenges/:id/rules", h.Challenge.ListRules)
	v1.GET("/challenges/:id/requirements", h.Challenge.ListRequirements)
	v1.GET("/challenges/:id/submissions", h.Submission.Gallery)
	v1.GET("/challenges/:id/leaderboard", h.Leaderboard.Standings)
	v1.GET("/challenges/:id/leaderboard/export", h.Leaderboard.ExportCSV)
	v1.GET("/challenges/:id/leaderboard/export.xlsx", h.Leaderboard.ExportXLSX)
	v1.GET("/submissions/:id", h.Submission.Get)
	v1.GET("/submissions/:id/votes", h.Vote.Count)
	v1.POST("/submissions/validate", h.Submission.Validate)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.Auth(cfg.JWT))

	protected.POST("/submissions", h.Submission.Create)
	protected.GET("/submissions/mine", h.Submission.ListMine)
	protected.PUT("/submissions/:id", h.Submission.Update)
	protected.POST("/submissions/:id/submit", h.Submission.Submit)
	protected.DELETE("/submissions/:id", h.Submission.Delete)
	protected.POST("/submissions/:id/vote", h.Vote.Cast)
	protected.DELETE("/submissions/:id/vote", h.Vote.Remove)
	protected.POST("/generate", h.Generation.Generate)

	// Admin routes - challenge management
	admin := protected.Group("")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/challenges", h.Challenge.Create)
	admin.PUT("/challenges/:id", h.Challenge.Update)
	admin.DELETE("/challenges/:id", h.Challenge.Delete)
	admin.PATCH("/challenges/:id/status", h.Challenge.UpdateStatus)
	admin.POST("/challenges/:id/rules", h.Challenge.AddRule)
	admin.DELETE("/challenges/:id/rules/:ruleId", h.Challenge.DeleteRule)
	admin.POST("/challenges/:id/requirements", h.Challenge.AddRequirement)
	admin.DELETE("/challenges/:id/requirements/:reqId", h.Challenge.DeleteRequirement)

	return r
}
