// @title xsell Storefront BFF
// @version 1.0
// @description Backend-for-frontend for the xsell marketplace storefront. Reshapes and forwards requests to the upstream member API.
// @BasePath /api
// @schemes http https
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/canghafiz/xsell-bff/config"
	"github.com/canghafiz/xsell-bff/controllers/post_controller"
	_ "github.com/canghafiz/xsell-bff/docs"
	"github.com/canghafiz/xsell-bff/middleware"
	"github.com/canghafiz/xsell-bff/routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if os.Getenv("BE_API") == "" {
		log.Println("⚠️  BE_API not set — proxy routes will answer with configuration errors")
	}

	// Redis connection (rate limiting + category cache; optional)
	config.ConnectRedis()

	// Image storage for the post-an-ad flow (optional)
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		if err := post_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️  Cloudinary not configured — image uploads disabled")
	}

	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.Metrics())

	api := router.Group("/api")
	api.Use(middleware.RateLimiter(100, time.Minute))

	routes.SetupStorefrontRoutes(api)
	routes.SetupAuthRoutes(api)
	routes.SetupUserRoutes(api)
	routes.SetupPostRoutes(api)
	log.Println("✅ API routes registered")

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("🚀 BFF is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func allowedOrigins() []string {
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		return []string{origin}
	}
	return []string{"http://localhost:3000", "http://localhost:3001"}
}
