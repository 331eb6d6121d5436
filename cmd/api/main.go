package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fahrielsara/portfolio-backend/config"
	"github.com/fahrielsara/portfolio-backend/internal/api"
	"github.com/fahrielsara/portfolio-backend/internal/database"
	"github.com/fahrielsara/portfolio-backend/internal/middleware"
	"github.com/fahrielsara/portfolio-backend/internal/router"
	"github.com/fahrielsara/portfolio-backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Services
	authService := service.NewAuthService(db, cfg.JWTSecret)
	contentService := service.NewContentService(db, redisClient)
	projectService := service.NewProjectService(db)
	messageService := service.NewMessageService(db)
	songService := service.NewSongService(db)
	spotifyClient := service.NewSpotifyClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret, "", "")

	geminiClient := service.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL)
	responder := service.NewFallbackResponder(geminiClient, cfg.GeminiAPIKey != "")

	var weatherClient service.WeatherLookup
	if cfg.WeatherAPIKey != "" {
		weatherClient = service.NewWeatherClient(cfg.WeatherAPIKey, cfg.WeatherAPIURL)
	} else {
		log.Printf("WEATHER_API_KEY not set, chat weather enrichment disabled")
	}

	chatService := service.NewChatService(db, contentService, responder, weatherClient)

	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 storage unavailable, image uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	// Handlers
	handlers := router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Content:  api.NewContentHandler(contentService, authService),
		Projects: api.NewProjectHandler(projectService, authService),
		Messages: api.NewMessageHandler(messageService, authService, middleware.NewContactRateLimiter(redisClient)),
		Chat:     api.NewChatHandler(chatService, authService, middleware.NewChatRateLimiter(redisClient)),
		Songs:    api.NewSongHandler(songService, spotifyClient, authService),
		Images:   api.NewImageHandler(imageService, authService),
	}

	engine := router.SetupRouter(cfg, db, redisClient, handlers)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler: engine,
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
