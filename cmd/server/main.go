// Chileautos Listing Search API
// @title Chileautos Listing Search API
// @version 1.0
// @description HTTP facade over the chileautos.cl listing extraction engine: keyword search, normalized listing records, sequential multi-page aggregation
// @host localhost:8080
// @BasePath /

package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	_ "chileautosearch/docs"
	"chileautosearch/internal/handlers"
	"chileautosearch/internal/logging"
	"chileautosearch/internal/middleware"
	"chileautosearch/internal/scraper"
)

func main() {
	logging.InitLogger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logging.Logger.Info("no .env file found")
	}

	// Initialize Gin router
	r := gin.Default()

	// Configure trusted proxies for reverse-proxy deployments
	r.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
		"172.16.0.0/12",  // Docker networks
		"10.0.0.0/8",     // Private networks
		"192.168.0.0/16", // Private networks
	})

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	// Read-only API: anything but GET gets a 405 with an Allow header.
	// CORS preflights are answered above before this runs.
	r.Use(middleware.MethodFilter([]string{http.MethodGet}))
	r.Use(middleware.SecurityHeaders())

	// Each API hit costs us an upstream request, so keep the per-IP rate modest
	limiter := middleware.NewRateLimiter(rate.Limit(1), 30)

	searchHandler := handlers.NewSearchHandler(scraper.New())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limiter))
	{
		api.GET("/search", searchHandler.Search)
		api.GET("/search/all", searchHandler.SearchAll)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logging.Logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logging.Logger.Fatal("failed to start server", zap.Error(err))
	}
}
