package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the site owner's admin account. The application is single-tenant;
// there is no self-service registration, accounts are provisioned with the
// seed-admin command.
type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}
