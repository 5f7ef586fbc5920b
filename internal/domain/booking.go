package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
	BookingNoShow     BookingStatus = "NO_SHOW"
)

// Booking reserves a room for a half-open [StartTime, EndTime) interval on a
// single local day. Times are wall-clock "HH:MM" strings; EndTime may be
// "24:00" for an end-of-day booking. CANCELLED rows stay in the table but do
// not occupy the room.
type Booking struct {
	ID        int64         `json:"id"`
	RoomID    int64         `json:"room_id" validate:"required" gorm:"index:idx_room_day,priority:1"`
	UserID    int64         `json:"user_id" validate:"required"`
	Date      string        `json:"date" validate:"required" gorm:"column:booking_date;type:varchar(10);index:idx_room_day,priority:2"`
	StartTime string        `json:"start_time" validate:"required" gorm:"type:varchar(5)"`
	EndTime   string        `json:"end_time" validate:"required" gorm:"type:varchar(5)"`
	Guests    int           `json:"guests" validate:"required,gt=0"`
	Status    BookingStatus `json:"status" gorm:"type:varchar(16);index"`

	EstimatedAmount int64 `json:"estimated_amount"`
	DepositAmount   int64 `json:"deposit_amount"`
	NerdCoinReward  int64 `json:"nerd_coin_reward"`

	Notes              string     `json:"notes,omitempty" gorm:"type:text"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Booking) TableName() string { return "bookings" }

// Occupies reports whether the booking blocks its time range. Mirrors the
// repository-side "status <> CANCELLED" filter for in-memory callers.
func (b *Booking) Occupies() bool {
	return b.Status != BookingCancelled
}
