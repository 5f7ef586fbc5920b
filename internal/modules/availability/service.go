package availability

import (
	"context"
	"time"

	"nerdspace/internal/pkg/timeslot"
)

// Service answers "which intervals are taken" and "is this range free".
// Both answers are advisory: they narrow the window for double-booking but
// the booking write performs the authoritative check in its own transaction.
type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// BookedSlots returns the occupied intervals for the room and day. Cancelled
// bookings are already filtered out by the repository.
func (s *Service) BookedSlots(ctx context.Context, roomID int64, date string) ([]timeslot.Slot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}
	return s.bookings.BookedSlots(ctx, roomID, date)
}

// CheckSlot is the real-time check issued right before submission. It
// re-reads persisted state and applies half-open overlap semantics to the
// candidate range. Incomplete or degenerate ranges are validation errors
// here: the endpoint contract requires both bounds.
func (s *Service) CheckSlot(ctx context.Context, roomID int64, date, start, end string) (*CheckResult, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}
	sm, err := timeslot.Parse(start)
	if err != nil {
		return nil, ErrValidation
	}
	em, err := timeslot.Parse(end)
	if err != nil {
		return nil, ErrValidation
	}
	if em <= sm {
		return nil, ErrValidation
	}

	slots, err := s.bookings.BookedSlots(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	if timeslot.IsRangeOverlapping(start, end, slots) {
		return &CheckResult{
			Available: false,
			Reason:    "time range overlaps an existing booking",
		}, nil
	}
	return &CheckResult{Available: true}, nil
}

// StartOptions enumerates selectable start times for a day at the room
// type's granularity, dropping taken points and, for today, anything sooner
// than the 15-minute look-ahead buffer.
func (s *Service) StartOptions(ctx context.Context, roomID int64, date string, now time.Time) ([]string, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, ErrNotFound
	}

	slots, err := s.BookedSlots(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	options := timeslot.Generate(room.Type.SlotStep())
	if date == now.Format("2006-01-02") {
		options = timeslot.FilterFrom(options, now, 15*time.Minute)
	}

	out := make([]string, 0, len(options))
	for _, opt := range options {
		if opt == timeslot.EndOfDay {
			continue // end-of-day is never a start
		}
		if !timeslot.IsPointBooked(opt, slots) {
			out = append(out, opt)
		}
	}
	return out, nil
}
