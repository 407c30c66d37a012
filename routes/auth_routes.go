package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/controllers/auth_controller"
)

// SetupAuthRoutes registers the session check and logout endpoints.
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/me", auth_controller.GetMe)
		auth.POST("/logout", auth_controller.Logout)
	}
}
