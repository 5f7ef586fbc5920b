package chat

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrEmptyMessage = errors.New("message body is empty")

type Service struct {
	db  *gorm.DB
	bus Bus
}

func NewService(db *gorm.DB, bus Bus) *Service {
	return &Service{db: db, bus: bus}
}

// PostMessage persists the message, then relays it to subscribers. History
// is the source of truth; the relay is best effort.
func (s *Service) PostMessage(ctx context.Context, conversationID string, senderID int64, body string) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	msg := &Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(conversationID, &Event{
			Type:    EventNewMessage,
			Topic:   conversationID,
			Payload: msg,
		})
	}
	return msg, nil
}

// History returns the newest messages first so a reconnecting client can
// restore its view.
func (s *Service) History(ctx context.Context, conversationID string, limit int) ([]Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var out []Message
	err := s.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}
