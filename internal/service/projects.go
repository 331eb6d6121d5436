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

// ErrProjectNotFound means no project exists with that id.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService manages the portfolio project cards.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Create adds a new project card.
func (s *ProjectService) Create(ctx context.Context, req types.CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		Tags:        req.Tags,
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// Update applies non-empty fields of the request to an existing project.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req types.UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.ImageURL != "" {
		project.ImageURL = req.ImageURL
	}
	if req.Link != "" {
		project.Link = req.Link
	}
	if req.Tags != nil {
		project.Tags = req.Tags
	}

	if err := s.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// Delete removes a project card.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
