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

type ChatHandler struct {
	chatService *service.ChatService
	authService *service.AuthService
	chatLimiter *middleware.RateLimiter
}

func NewChatHandler(chatService *service.ChatService, authService *service.AuthService, chatLimiter *middleware.RateLimiter) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		authService: authService,
		chatLimiter: chatLimiter,
	}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.POST("/sessions", h.CreateSession)

		send := []gin.HandlerFunc{}
		if h.chatLimiter != nil {
			send = append(send, h.chatLimiter.RateLimitMiddleware())
		}
		send = append(send, h.SendMessage)
		chat.POST("/sessions/:id/messages", send...)

		chat.GET("/sessions", middleware.AuthMiddleware(h.authService), h.ListSessions)
		chat.GET("/sessions/:id", middleware.AuthMiddleware(h.authService), h.GetSession)
		chat.DELETE("/sessions/:id", middleware.AuthMiddleware(h.authService), h.DeleteSession)
	}
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req types.CreateSessionRequest
	// Body is optional; an empty POST opens an untagged session.
	_ = c.ShouldBindJSON(&req)

	session, err := h.chatService.CreateSession(c.Request.Context(), req.ClientTag)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req types.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, reply, err := h.chatService.SendMessage(c.Request.Context(), id, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":   reply,
		"session": session,
	})
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.chatService.ListSessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *ChatHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := h.chatService.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *ChatHandler) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if err := h.chatService.DeleteSession(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
