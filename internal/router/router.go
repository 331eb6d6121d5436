package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fahrielsara/portfolio-backend/config"
	"github.com/fahrielsara/portfolio-backend/internal/api"
)

// Handlers bundles every route-owning handler for registration.
type Handlers struct {
	Auth     *api.AuthHandler
	Content  *api.ContentHandler
	Projects *api.ProjectHandler
	Messages *api.MessageHandler
	Chat     *api.ChatHandler
	Songs    *api.SongHandler
	Images   *api.ImageHandler
}

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, handlers Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"status": "ok"}
		code := http.StatusOK

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"] = "unreachable"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				status["redis"] = "unreachable"
				status["status"] = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, status)
	})

	v1 := router.Group("/api/v1")
	{
		handlers.Auth.RegisterRoutes(v1)
		handlers.Content.RegisterRoutes(v1)
		handlers.Projects.RegisterRoutes(v1)
		handlers.Messages.RegisterRoutes(v1)
		handlers.Chat.RegisterRoutes(v1)
		handlers.Songs.RegisterRoutes(v1)
		handlers.Images.RegisterRoutes(v1)
	}

	return router
}
