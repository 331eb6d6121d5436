package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Turn roles. Anything that is not RoleUser is treated as the assistant
// when history is mapped for the generative API.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in a chat session.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatTurns stores the ordered, append-only turn list as a JSONB column.
type ChatTurns []ChatTurn

// Value implements the driver.Valuer interface
func (t ChatTurns) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface
func (t *ChatTurns) Scan(value interface{}) error {
	if value == nil {
		*t = ChatTurns{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported chat turns column type %T", value)
	}

	return json.Unmarshal(bytes, t)
}

// ChatSession is one visitor conversation. Created lazily when the widget
// is first opened; turns are only ever appended by the running application.
// Deletion is an administrative action.
type ChatSession struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	StartedAt     time.Time      `json:"started_at"`
	LastMessageAt time.Time      `gorm:"index" json:"last_message_at"`
	ClientTag     string         `gorm:"size:255" json:"client_tag"`
	Turns         ChatTurns      `gorm:"type:jsonb;not null;default:'[]'" json:"turns"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
