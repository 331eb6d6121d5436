package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahrielsara/portfolio-backend/internal/middleware"
	"github.com/fahrielsara/portfolio-backend/internal/models"
	"github.com/fahrielsara/portfolio-backend/internal/service"
)

type ContentHandler struct {
	contentService *service.ContentService
	authService    *service.AuthService
}

func NewContentHandler(contentService *service.ContentService, authService *service.AuthService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		authService:    authService,
	}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	content := router.Group("/content")
	{
		content.GET("", h.GetContent)
		content.GET("/watch", h.WatchContent)
		content.PUT("", middleware.AuthMiddleware(h.authService), h.SetContent)
	}
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	content, err := h.contentService.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site content"})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) SetContent(c *gin.Context) {
	var content models.SiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.Set(c.Request.Context(), content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}
