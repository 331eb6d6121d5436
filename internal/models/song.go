package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SongRecommendation is a visitor-submitted song suggestion awaiting review
// in the dashboard. Approving one promotes it to the song of the day and
// removes the recommendation.
type SongRecommendation struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Artist        string         `gorm:"size:255;not null" json:"artist"`
	Note          string         `gorm:"type:text" json:"note"`
	SongURL       string         `gorm:"size:255" json:"song_url"`
	AlbumImageURL string         `gorm:"size:255" json:"album_image_url"`
	PreviewURL    string         `gorm:"size:255" json:"preview_url"`
}

// SongOfTheDay is the single curated pick shown by the widget. Stored as one
// row keyed "current"; when absent the API serves a deterministic local
// fallback instead.
type SongOfTheDay struct {
	Key           string    `gorm:"primarykey;size:64" json:"key"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Artist        string    `gorm:"size:255;not null" json:"artist"`
	AlbumImageURL string    `gorm:"size:255" json:"album_image_url"`
	SongURL       string    `gorm:"size:255" json:"song_url"`
	PreviewURL    string    `gorm:"size:255" json:"preview_url"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SongOfTheDayKey is the key of the single curated row.
const SongOfTheDayKey = "current"
