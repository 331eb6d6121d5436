package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fahrielsara/portfolio-backend/internal/models"
	"github.com/fahrielsara/portfolio-backend/internal/types"
)

// ErrRecommendationNotFound means no recommendation exists with that id.
var ErrRecommendationNotFound = errors.New("recommendation not found")

// localSongs is the built-in rotation served when no curated pick exists.
var localSongs = []models.SongOfTheDay{
	{Title: "Starboy", Artist: "The Weeknd, Daft Punk", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b2734718e28d24227b9dc7491d43", SongURL: "https://open.spotify.com/track/7MXVkk9YMctZqd1S0KX547"},
	{Title: "Midnight City", Artist: "M83", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b273195b0fb6c757a3e790a169b1", SongURL: "https://open.spotify.com/track/6GyDY0yE4766UeS3f5SPT6"},
	{Title: "Instant Crush", Artist: "Daft Punk, Julian Casablancas", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b2735d214f445494d934bb7d0a47", SongURL: "https://open.spotify.com/track/2nG5w9GT8bn2i40ewRZbUL"},
	{Title: "The Less I Know The Better", Artist: "Tame Impala", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b2739e1cfc75c364a7f6d6480c92", SongURL: "https://open.spotify.com/track/6K4t31amVTZDgR3sKmwUJJ"},
	{Title: "Sweater Weather", Artist: "The Neighbourhood", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b27388cfdcc1e155bc8b49740871", SongURL: "https://open.spotify.com/track/2QjOHCTQ1Jl3zawyYOpxh6"},
	{Title: "Do I Wanna Know?", Artist: "Arctic Monkeys", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b2734ae1c4c5c45aabe565499163", SongURL: "https://open.spotify.com/track/5FVd6KXrgO9B3JPmC8OPst"},
	{Title: "Space Song", Artist: "Beach House", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b273641a998cb47ff23089da3b24", SongURL: "https://open.spotify.com/track/7H0ya83CMmgFcOhw0UB6ow"},
	{Title: "After Dark", Artist: "Mr. Kitty", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b27306db7c2ac07904724aab7155", SongURL: "https://open.spotify.com/track/2LkohdMsL0K9KwcPRlUE2d"},
	{Title: "Neon Moon", Artist: "Cigarettes After Sex", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b273b0607ce1e48fd60dd813f8c5", SongURL: "https://open.spotify.com/track/3rW5r9pXp5u1V46o6j2z2y"},
	{Title: "Resonance", Artist: "Home", AlbumImageURL: "https://i.scdn.co/image/ab67616d0000b273a0e1a17f23c9135a577d636b", SongURL: "https://open.spotify.com/track/1TuopWDIuDi1553081zvuU"},
}

// SongService manages the song of the day and visitor recommendations.
type SongService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSongService creates a new SongService instance
func NewSongService(db *gorm.DB) *SongService {
	return &SongService{db: db, now: time.Now}
}

// localDailySong picks a deterministic entry from the built-in rotation
// based on the day of the year, so the same song is served all day.
func (s *SongService) localDailySong() models.SongOfTheDay {
	today := s.now()
	dayOfYear := today.YearDay()
	song := localSongs[dayOfYear%len(localSongs)]
	song.Key = models.SongOfTheDayKey
	return song
}

// GetSongOfTheDay returns the curated pick, or the local rotation entry for
// today when nothing has been pinned.
func (s *SongService) GetSongOfTheDay(ctx context.Context) (*models.SongOfTheDay, error) {
	var song models.SongOfTheDay
	err := s.db.WithContext(ctx).First(&song, "key = ?", models.SongOfTheDayKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		local := s.localDailySong()
		return &local, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load song of the day: %w", err)
	}
	return &song, nil
}

// SetSongOfTheDay pins the curated song, replacing any previous pick.
func (s *SongService) SetSongOfTheDay(ctx context.Context, req types.SetSongOfTheDayRequest) (*models.SongOfTheDay, error) {
	song := models.SongOfTheDay{
		Key:           models.SongOfTheDayKey,
		Title:         req.Title,
		Artist:        req.Artist,
		AlbumImageURL: req.AlbumImageURL,
		SongURL:       req.SongURL,
		PreviewURL:    req.PreviewURL,
		UpdatedAt:     s.now(),
	}
	if err := s.db.WithContext(ctx).Save(&song).Error; err != nil {
		return nil, fmt.Errorf("failed to save song of the day: %w", err)
	}
	return &song, nil
}

// Recommend stores a visitor's song suggestion for later review.
func (s *SongService) Recommend(ctx context.Context, req types.RecommendSongRequest) (*models.SongRecommendation, error) {
	rec := models.SongRecommendation{
		ID:            uuid.New(),
		Title:         req.Title,
		Artist:        req.Artist,
		Note:          req.Note,
		SongURL:       req.SongURL,
		AlbumImageURL: req.AlbumImageURL,
		PreviewURL:    req.PreviewURL,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to save recommendation: %w", err)
	}
	return &rec, nil
}

// ListRecommendations returns pending suggestions, newest first.
func (s *SongService) ListRecommendations(ctx context.Context) ([]models.SongRecommendation, error) {
	var recs []models.SongRecommendation
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}

// ApproveRecommendation promotes a suggestion to the song of the day and
// removes it from the pending list.
func (s *SongService) ApproveRecommendation(ctx context.Context, id uuid.UUID) (*models.SongOfTheDay, error) {
	var rec models.SongRecommendation
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecommendationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendation: %w", err)
	}

	song := models.SongOfTheDay{
		Key:           models.SongOfTheDayKey,
		Title:         rec.Title,
		Artist:        rec.Artist,
		AlbumImageURL: rec.AlbumImageURL,
		SongURL:       rec.SongURL,
		PreviewURL:    rec.PreviewURL,
		UpdatedAt:     s.now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&song).Error; err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve recommendation: %w", err)
	}
	return &song, nil
}

// DeleteRecommendation discards a pending suggestion.
func (s *SongService) DeleteRecommendation(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.SongRecommendation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete recommendation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecommendationNotFound
	}
	return nil
}
