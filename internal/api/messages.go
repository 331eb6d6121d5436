package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fahrielsara/portfolio-backend/internal/middleware"
	"github.com/fahrielsara/portfolio-backend/internal/service"
	"github.com/fahrielsara/portfolio-backend/internal/types"
)

type MessageHandler struct {
	messageService *service.MessageService
	authService    *service.AuthService
	contactLimiter *middleware.RateLimiter
}

func NewMessageHandler(messageService *service.MessageService, authService *service.AuthService, contactLimiter *middleware.RateLimiter) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		authService:    authService,
		contactLimiter: contactLimiter,
	}
}

func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages")
	{
		create := []gin.HandlerFunc{}
		if h.contactLimiter != nil {
			create = append(create, h.contactLimiter.RateLimitMiddleware())
		}
		create = append(create, h.CreateMessage)
		messages.POST("", create...)

		messages.GET("", middleware.AuthMiddleware(h.authService), h.ListMessages)
		messages.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteMessage)
	}
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req types.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messageService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	msgs, err := h.messageService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
