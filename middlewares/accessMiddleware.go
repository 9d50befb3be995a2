package middlewares

import (
	"net/http"

	"ecotrack-be/access"

	"github.com/gin-gonic/gin"
)

// RequireAction rejects the request with 403 unless the caller's role passes
// the access gate for the given action. Must run after AuthMiddleware.
func RequireAction(action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.CanPerform(CurrentRole(c), action) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to perform this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}
