package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/controllers/user_controller"
	"github.com/canghafiz/xsell-bff/controllers/wishlist_controller"
	"github.com/canghafiz/xsell-bff/middleware"
)

// SetupUserRoutes registers account endpoints. Login, register and OTP are
// public; profile updates and the wishlist require a session.
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	{
		user.POST("/login", user_controller.Login)
		user.POST("/register", user_controller.Register)
		user.POST("/otp", user_controller.SendOtp)
		user.PUT("", middleware.AuthRequired(), user_controller.UpdateUser)
	}

	wishlist := router.Group("/wishlist")
	wishlist.Use(middleware.AuthRequired())
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("", wishlist_controller.ToggleWishlist)
	}
}
