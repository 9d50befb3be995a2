package routes

import (
	"ecotrack-be/controllers"

	"github.com/gin-gonic/gin"
)

// GuideRoutes sets up the public waste-guide route
func GuideRoutes(r *gin.Engine, ctl *controllers.GuideController) {
	r.GET("/api/guide", ctl.GetWasteGuide)
}
