package availability

import (
	"context"

	"nerdspace/internal/domain"
	"nerdspace/internal/pkg/timeslot"
)

// BookingRepository is the persistence view this module needs: the occupied
// intervals for one room and day, freshly read so the real-time check sees
// the latest committed state.
type BookingRepository interface {
	BookedSlots(ctx context.Context, roomID int64, date string) ([]timeslot.Slot, error)
}

// RoomRepository resolves the room so start options use the granularity of
// its service type.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
