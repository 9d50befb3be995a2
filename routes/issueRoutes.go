package routes

import (
	"ecotrack-be/access"
	"ecotrack-be/controllers"
	"ecotrack-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes. Issue creation is rate limited per
// user when Redis is configured.
func IssueRoutes(r *gin.Engine, ctl *controllers.IssueController, rateLimit int) {
	issues := r.Group("/api/issues", middlewares.AuthMiddleware())
	{
		issues.POST("", middlewares.RequireAction(access.CreateIssue), middlewares.IssueRateLimiter(rateLimit), ctl.CreateIssue)
		issues.GET("", middlewares.RequireAction(access.ViewAllIssues), ctl.ListIssues)
		issues.PATCH("/:id/status", middlewares.RequireAction(access.ResolveIssue), ctl.UpdateIssueStatus)
	}
}
