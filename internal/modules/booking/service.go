package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nerdspace/internal/domain"
	"nerdspace/internal/modules/pricing"
	"nerdspace/internal/pkg/timeslot"
	"nerdspace/internal/repository"
)

// allowedTransitions is the booking lifecycle. Cancellation goes through
// CancelBooking so a reason is always recorded.
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:    {domain.BookingConfirmed},
	domain.BookingConfirmed:  {domain.BookingInProgress, domain.BookingNoShow},
	domain.BookingInProgress: {domain.BookingCompleted},
}

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	quoter   Quoter
	coins    CoinCrediter
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	quoter Quoter,
	coins CoinCrediter,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		quoter:   quoter,
		coins:    coins,
		notifs:   notifs,
	}
}

// CreateBooking validates the request, prices it, and writes it behind the
// transactional overlap guard. The guard is the point of truth: any earlier
// availability answer the client saw was advisory.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}
	duration := timeslot.Duration(req.StartTime, req.EndTime)
	if duration <= 0 {
		return nil, ErrValidation
	}
	if req.Guests == 0 {
		req.Guests = 1
	}
	if req.Guests < 0 {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !room.IsActive {
		return nil, ErrNotFound
	}
	if room.Type == domain.ServiceMeeting && req.Guests > room.Capacity {
		return nil, ErrValidation
	}

	quote, err := s.quoter.Quote(ctx, room.Type, duration, req.Guests)
	if err != nil {
		if errors.Is(err, pricing.ErrNoQuote) || errors.Is(err, pricing.ErrValidation) {
			return nil, ErrPricingUnavailable
		}
		return nil, err
	}

	b := &domain.Booking{
		RoomID:          req.RoomID,
		UserID:          req.UserID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Guests:          req.Guests,
		Status:          domain.BookingPending,
		EstimatedAmount: quote.EstimatedAmount,
		DepositAmount:   quote.DepositAmount,
		NerdCoinReward:  quote.NerdCoinReward,
		Notes:           req.Notes,
	}

	if err := s.bookings.CreateWithGuard(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b.UserID, b.ID, b.Date, b.StartTime)
	}

	return b, nil
}

// UpdateStatus moves a booking along its lifecycle. Completing a booking
// credits the Nerd Coin reward snapshotted at creation time.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}

	if !transitionAllowed(b.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}

	switch newStatus {
	case domain.BookingConfirmed:
		if s.notifs != nil {
			_ = s.notifs.NotifyBookingConfirmed(ctx, b.UserID, b.ID)
		}
	case domain.BookingCompleted:
		if s.coins != nil && b.NerdCoinReward > 0 {
			ref := fmt.Sprintf("booking:%d", b.ID)
			if err := s.coins.Credit(ctx, b.UserID, b.NerdCoinReward, ref); err != nil {
				// The status change stands; the reward can be replayed.
				return nil, err
			}
		}
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// CancelBooking frees the interval while keeping the row for history.
// Only the booking's owner or an admin may cancel.
func (s *Service) CancelBooking(ctx context.Context, bookingID, callerID int64, callerRole string, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != callerID && callerRole != string(domain.RoleAdmin) {
		return nil, ErrNotFound
	}

	switch b.Status {
	case domain.BookingCancelled, domain.BookingCompleted, domain.BookingNoShow:
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.UserID, b.ID, reason)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) MyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
