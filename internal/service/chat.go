package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fahrielsara/portfolio-backend/internal/models"
)

// ErrSessionNotFound means no chat session exists with that id.
var ErrSessionNotFound = errors.New("chat session not found")

// greetingText opens every new session as the assistant's first turn.
const greetingText = "Ben Fahrielsara sizlere nasıl yardımcı olabilirim? 🤖"

// historyWindow bounds how many prior turns are sent upstream. Older turns
// stay persisted for the dashboard transcript view.
const historyWindow = 10

// defaultMinLatency pads fast replies so the typing indicator reads
// naturally in the widget.
const defaultMinLatency = 1500 * time.Millisecond

// WeatherLookup resolves a city name to current conditions.
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) (*WeatherReport, error)
}

// ChatService runs the chat widget conversations: it owns session
// persistence, prompt assembly, weather enrichment and the model fallback.
type ChatService struct {
	db         *gorm.DB
	content    *ContentService
	responder  *FallbackResponder
	weather    WeatherLookup
	minLatency time.Duration
}

// NewChatService creates a new ChatService instance
func NewChatService(db *gorm.DB, content *ContentService, responder *FallbackResponder, weather WeatherLookup) *ChatService {
	return &ChatService{
		db:         db,
		content:    content,
		responder:  responder,
		weather:    weather,
		minLatency: defaultMinLatency,
	}
}

// SetMinLatency overrides the reply pacing floor. Zero disables the pad;
// handler tests use that so message round trips don't sleep.
func (s *ChatService) SetMinLatency(d time.Duration) {
	s.minLatency = d
}

// CreateSession opens a new session seeded with the assistant greeting.
func (s *ChatService) CreateSession(ctx context.Context, clientTag string) (*models.ChatSession, error) {
	now := time.Now()
	session := models.ChatSession{
		ID:            uuid.New(),
		StartedAt:     now,
		LastMessageAt: now,
		ClientTag:     clientTag,
		Turns: models.ChatTurns{
			{Role: models.RoleAssistant, Text: greetingText},
		},
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return &session, nil
}

// GetSession loads a session with its full transcript.
func (s *ChatService) GetSession(ctx context.Context, id uuid.UUID) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chat session: %w", err)
	}
	return &session, nil
}

// ListSessions returns sessions for the dashboard, most recently active
// first.
func (s *ChatService) ListSessions(ctx context.Context) ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	if err := s.db.WithContext(ctx).Order("last_message_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a session and its transcript.
func (s *ChatService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.ChatSession{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete chat session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// SendMessage appends the visitor's message to the session, generates the
// assistant's reply and appends that too. The reply is always a displayable
// string; upstream failures surface as apology text, not errors.
//
// Replies are padded to a minimum latency so the reply never lands before
// the widget's typing animation has a chance to render.
func (s *ChatService) SendMessage(ctx context.Context, sessionID uuid.UUID, message string) (*models.ChatSession, string, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	session.Turns = append(session.Turns, models.ChatTurn{Role: models.RoleUser, Text: message})
	session.LastMessageAt = time.Now()
	if err := s.db.WithContext(ctx).Save(session).Error; err != nil {
		return nil, "", fmt.Errorf("failed to persist user turn: %w", err)
	}

	started := time.Now()
	reply := s.generateReply(ctx, session.Turns, message)
	s.padLatency(ctx, started)

	session.Turns = append(session.Turns, models.ChatTurn{Role: models.RoleAssistant, Text: reply})
	session.LastMessageAt = time.Now()
	if err := s.db.WithContext(ctx).Save(session).Error; err != nil {
		return nil, "", fmt.Errorf("failed to persist assistant turn: %w", err)
	}

	return session, reply, nil
}

// generateReply assembles the prompt and invokes the model fallback. turns
// already includes the message being answered as its final entry.
func (s *ChatService) generateReply(ctx context.Context, turns models.ChatTurns, message string) string {
	content, err := s.content.Get(ctx)
	if err != nil {
		log.Printf("[Chat] Failed to load site content, using defaults: %v", err)
		content = DefaultSiteContent()
	}
	systemPrompt := BuildSystemPrompt(content)

	// Weather questions get fresh conditions injected ahead of the message
	// and are answered without conversation context.
	if city, ok := DetectWeatherIntent(message); ok && city != "" && s.weather != nil {
		report, err := s.weather.Lookup(ctx, city)
		if err != nil {
			log.Printf("[Chat] Weather lookup for %q failed: %v", city, err)
		} else {
			enriched := BuildWeatherNote(report.City, report) + " " + message
			return s.responder.Respond(ctx, systemPrompt, nil, enriched)
		}
	}

	history := assembleHistory(turns)
	return s.responder.Respond(ctx, systemPrompt, history, message)
}

// assembleHistory maps the stored transcript to the upstream window: the
// newest turn (the message being answered) is excluded, the window keeps
// the most recent entries, and leading non-user turns are dropped because
// the upstream API requires the sequence to open with a user turn.
func assembleHistory(turns models.ChatTurns) []models.ChatTurn {
	if len(turns) == 0 {
		return nil
	}
	history := turns[:len(turns)-1]
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for len(history) > 0 && history[0].Role != models.RoleUser {
		history = history[1:]
	}
	return history
}

// padLatency blocks until at least minLatency has elapsed since started.
func (s *ChatService) padLatency(ctx context.Context, started time.Time) {
	remaining := s.minLatency - time.Since(started)
	if remaining <= 0 {
		return
	}
	select {
	case <-time.After(remaining):
	case <-ctx.Done():
	}
}
