package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/moodtunes/backend/internal/delivery/http"
	"github.com/moodtunes/backend/internal/domain"
	"github.com/moodtunes/backend/internal/service"
)

const (
	appName    = "Mood-Based Song Recommendation API"
	appVersion = "1.0.0"
)

func main() {
	// Load environment variables, the hosted deployment injects them directly
	if os.Getenv("RENDER") != "true" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment")
		}
	}

	cfg := loadConfig()
	if cfg.OpenWeatherAPIKey == "" {
		log.Println("Warning: OPENWEATHER_API_KEY is not set, weather lookups will fail")
	}
	if cfg.LastFMAPIKey == "" {
		log.Println("Warning: LASTFM_API_KEY is not set, no songs will be recommended")
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.HTTPClientTimeout)
	musicSvc := service.NewMusicService(cfg.LastFMAPIKey, cfg.LastFMBaseURL, cfg.HTTPClientTimeout)
	recommendationSvc := service.NewRecommendationService(weatherSvc, musicSvc, domain.DefaultMoodTable())

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:               appName + " v" + appVersion,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          http.ErrorHandler,
		DisableStartupMessage: cfg.Env == "production",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, recommendationSvc)

	// Graceful shutdown
	go func() {
		addr := cfg.Host + ":" + cfg.Port
		log.Printf("Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
