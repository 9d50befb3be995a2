package routes

import (
	"ecotrack-be/access"
	"ecotrack-be/controllers"
	"ecotrack-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ScheduleRoutes sets up the pickup-schedule routes, including the admin
// analytics endpoint derived from the same collection.
func ScheduleRoutes(r *gin.Engine, ctl *controllers.ScheduleController, analytics *controllers.AnalyticsController) {
	schedules := r.Group("/api/schedules", middlewares.AuthMiddleware())
	{
		schedules.GET("", middlewares.RequireAction(access.ViewAllSchedules), ctl.ListSchedules)
		schedules.POST("", middlewares.RequireAction(access.CreateSchedule), ctl.CreateSchedule)
		schedules.PATCH("/:id/status", middlewares.RequireAction(access.TransitionSchedule), ctl.UpdateScheduleStatus)
		schedules.GET("/stats", middlewares.RequireAction(access.ViewAnalytics), analytics.GetCollectionStats)
	}
}
