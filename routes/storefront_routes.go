package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/canghafiz/xsell-bff/controllers/category_controller"
	"github.com/canghafiz/xsell-bff/controllers/listing_controller"
	"github.com/canghafiz/xsell-bff/controllers/page_controller"
	"github.com/canghafiz/xsell-bff/controllers/product_controller"
)

// SetupStorefrontRoutes registers the public browse/search surface.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	products := router.Group("/product")
	{
		products.GET("/category", product_controller.GetProductsByCategory)
		products.GET("/:slug", product_controller.GetProductBySlug)
	}

	router.GET("/listing", listing_controller.GetListingPage)
	router.GET("/categories", category_controller.GetCategories)
	router.GET("/page", page_controller.GetPageSections)
}
