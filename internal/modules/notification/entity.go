package notification

import "time"

type Type string

const (
	TypeBookingCreated   Type = "booking_created"
	TypeBookingConfirmed Type = "booking_confirmed"
	TypeBookingCancelled Type = "booking_cancelled"
)

type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index:idx_notifications_user_unread"`
	Type      Type      `json:"type" gorm:"type:varchar(32)"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty" gorm:"type:text"`
	IsRead    bool      `json:"is_read" gorm:"index:idx_notifications_user_unread"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
