package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one chat line in a support conversation. ConversationID is the
// pub/sub topic; clients keep it and present it on connect.
type Message struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ConversationID string    `json:"conversation_id" gorm:"type:varchar(64);not null;index"`
	SenderID       int64     `json:"sender_id" gorm:"not null"`
	Body           string    `json:"body" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Message) TableName() string { return "chat_messages" }

func (m *Message) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
