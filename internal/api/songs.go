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

type SongHandler struct {
	songService   *service.SongService
	spotifyClient *service.SpotifyClient
	authService   *service.AuthService
}

func NewSongHandler(songService *service.SongService, spotifyClient *service.SpotifyClient, authService *service.AuthService) *SongHandler {
	return &SongHandler{
		songService:   songService,
		spotifyClient: spotifyClient,
		authService:   authService,
	}
}

func (h *SongHandler) RegisterRoutes(router *gin.RouterGroup) {
	songs := router.Group("/songs")
	{
		songs.GET("/of-the-day", h.GetSongOfTheDay)
		songs.POST("/recommendations", h.RecommendSong)

		songs.PUT("/of-the-day", middleware.AuthMiddleware(h.authService), h.SetSongOfTheDay)
		songs.GET("/recommendations", middleware.AuthMiddleware(h.authService), h.ListRecommendations)
		songs.POST("/recommendations/:id/approve", middleware.AuthMiddleware(h.authService), h.ApproveRecommendation)
		songs.DELETE("/recommendations/:id", middleware.AuthMiddleware(h.authService), h.DeleteRecommendation)
	}

	tracks := router.Group("/tracks")
	{
		tracks.GET("/search", middleware.AuthMiddleware(h.authService), h.SearchTracks)
	}
}

func (h *SongHandler) GetSongOfTheDay(c *gin.Context) {
	song, err := h.songService.GetSongOfTheDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch song of the day"})
		return
	}
	c.JSON(http.StatusOK, song)
}

func (h *SongHandler) SetSongOfTheDay(c *gin.Context) {
	var req types.SetSongOfTheDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songService.SetSongOfTheDay(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set song of the day"})
		return
	}
	c.JSON(http.StatusOK, song)
}

func (h *SongHandler) RecommendSong(c *gin.Context) {
	var req types.RecommendSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.songService.Recommend(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recommendation"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *SongHandler) ListRecommendations(c *gin.Context) {
	recs, err := h.songService.ListRecommendations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (h *SongHandler) ApproveRecommendation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recommendation id"})
		return
	}

	song, err := h.songService.ApproveRecommendation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve recommendation"})
		return
	}
	c.JSON(http.StatusOK, song)
}

func (h *SongHandler) DeleteRecommendation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recommendation id"})
		return
	}

	if err := h.songService.DeleteRecommendation(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recommendation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recommendation deleted"})
}

func (h *SongHandler) SearchTracks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	tracks := h.spotifyClient.SearchTracks(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}
