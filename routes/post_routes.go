package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/controllers/post_controller"
	"github.com/canghafiz/xsell-bff/middleware"
)

// SetupPostRoutes registers the "post an ad" flow, members only.
func SetupPostRoutes(router *gin.RouterGroup) {
	post := router.Group("/post")
	post.Use(middleware.AuthRequired())
	{
		post.POST("", post_controller.CreatePost)
		post.POST("/images", post_controller.UploadImages)
	}
}
