package routes

import (
	"ecotrack-be/controllers"
	"ecotrack-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the session routes
func AuthRoutes(r *gin.Engine, ctl *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ctl.RegisterUser)
		auth.POST("/login", ctl.LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(), ctl.GetMe)
		auth.POST("/logout", ctl.LogoutUser)
	}
}
