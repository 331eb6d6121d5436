package api

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fahrielsara/portfolio-backend/internal/models"
	"github.com/fahrielsara/portfolio-backend/internal/service"
	"github.com/fahrielsara/portfolio-backend/internal/testhelpers"
)

// testEnv wires a full router over an in-memory database. geminiURL points
// message generation at a fake upstream; leave it empty for tests that never
// send a chat message.
type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	auth    *service.AuthService
	content *service.ContentService
	chat    *service.ChatService
	songs   *service.SongService
}

func setupTestEnv(t *testing.T, geminiURL string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLite(t)

	authService := service.NewAuthService(db, "test-secret")
	contentService := service.NewContentService(db, nil)
	projectService := service.NewProjectService(db)
	messageService := service.NewMessageService(db)
	songService := service.NewSongService(db)
	spotifyClient := service.NewSpotifyClient("", "", "", "")

	gemini := service.NewGeminiClient("test-key", geminiURL)
	responder := service.NewFallbackResponder(gemini, geminiURL != "")
	chatService := service.NewChatService(db, contentService, responder, nil)
	chatService.SetMinLatency(0)

	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/api/v1")
	{
		NewAuthHandler(authService).RegisterRoutes(v1)
		NewContentHandler(contentService, authService).RegisterRoutes(v1)
		NewProjectHandler(projectService, authService).RegisterRoutes(v1)
		NewMessageHandler(messageService, authService, nil).RegisterRoutes(v1)
		NewChatHandler(chatService, authService, nil).RegisterRoutes(v1)
		NewSongHandler(songService, spotifyClient, authService).RegisterRoutes(v1)
		NewImageHandler(nil, authService).RegisterRoutes(v1)
	}

	return &testEnv{
		router:  router,
		db:      db,
		auth:    authService,
		content: contentService,
		chat:    chatService,
		songs:   songService,
	}
}

// createTestOwnerAndToken seeds the dashboard owner and returns a valid
// bearer token for admin routes.
func createTestOwnerAndToken(t *testing.T, env *testEnv) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	owner := models.User{
		ID:           uuid.New(),
		Name:         "Owner",
		Email:        "owner@example.com",
		PasswordHash: string(hashed),
	}
	if err := env.db.Create(&owner).Error; err != nil {
		t.Fatalf("Failed to create owner: %v", err)
	}

	token, err := env.auth.Login(owner.Email, "test-password")
	if err != nil {
		t.Fatalf("Failed to log in owner: %v", err)
	}
	return owner, token
}
