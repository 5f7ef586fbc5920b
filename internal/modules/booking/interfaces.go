package booking

import (
	"context"

	"nerdspace/internal/domain"
	"nerdspace/internal/modules/pricing"
)

type BookingRepository interface {
	CreateWithGuard(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type Quoter interface {
	Quote(ctx context.Context, serviceType domain.ServiceType, durationMinutes, guests int) (*pricing.Breakdown, error)
}

// CoinCrediter grants Nerd Coins when a booking completes.
type CoinCrediter interface {
	Credit(ctx context.Context, userID, amount int64, reference string) error
}

type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, userID, bookingID int64, date, start string) error
	NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64) error
	NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error
}
