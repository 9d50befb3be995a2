package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"ecotrack-be/config"
	"ecotrack-be/controllers"
	"ecotrack-be/routes"
	"ecotrack-be/storage"
	"ecotrack-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	backend, err := storage.Open()
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}

	// Connect Redis for the rate limiter even when it is not the storage
	// driver, but only if an address is configured.
	if os.Getenv("REDIS_ADDRESS") != "" {
		config.ConnectRedis()
	}

	schedules := store.NewScheduleStore(backend)
	issues := store.NewIssueStore(backend)

	rateLimit := 10
	if v := os.Getenv("ISSUE_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r, controllers.NewAuthController())
	routes.ScheduleRoutes(r, controllers.NewScheduleController(schedules), controllers.NewAnalyticsController(schedules, issues))
	routes.IssueRoutes(r, controllers.NewIssueController(issues), rateLimit)
	routes.GuideRoutes(r, controllers.NewGuideController())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
