package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fahrielsara/portfolio-backend/internal/models"
	"github.com/fahrielsara/portfolio-backend/internal/types"
)

// ErrMessageNotFound means no contact message exists with that id.
var ErrMessageNotFound = errors.New("message not found")

// MessageService stores contact-form submissions for the dashboard inbox.
type MessageService struct {
	db *gorm.DB
}

// NewMessageService creates a new MessageService instance
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// Create stores a new contact-form submission.
func (s *MessageService) Create(ctx context.Context, req types.ContactMessageRequest) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return &msg, nil
}

// List returns all messages, newest first.
func (s *MessageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// Delete removes a message from the inbox.
func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
