package calendar

import (
	"context"
	"errors"
	"time"

	"nerdspace/internal/domain"
	"nerdspace/internal/pkg/timeslot"
)

// Visible window of the admin day grid: hourly buckets 08:00 through 21:00,
// covering bookings up to 22:00.
const (
	gridOpenMinutes  = 8 * 60
	gridCloseMinutes = 22 * 60
	bucketMinutes    = 60
)

var ErrValidation = errors.New("validation error")

type RoomRepository interface {
	ListActive(ctx context.Context) ([]domain.Room, error)
}

type BookingRepository interface {
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
}

type Service struct {
	rooms    RoomRepository
	bookings BookingRepository
}

func NewService(rooms RoomRepository, bookings BookingRepository) *Service {
	return &Service{rooms: rooms, bookings: bookings}
}

// DayGrid lays the day's bookings out on the room/hour grid. Cancelled
// bookings and bookings starting outside the visible window are skipped,
// not errors.
func (s *Service) DayGrid(ctx context.Context, date string) (*Grid, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[int64][]Cell, len(rooms))
	for i := range bookings {
		b := &bookings[i]
		if !b.Occupies() {
			continue
		}
		cell, ok := project(b)
		if !ok {
			continue
		}
		byRoom[b.RoomID] = append(byRoom[b.RoomID], cell)
	}

	grid := &Grid{
		Date:    date,
		Slots:   slotLabels(),
		Columns: make([]Column, 0, len(rooms)),
	}
	for _, room := range rooms {
		cells := byRoom[room.ID]
		if cells == nil {
			cells = []Cell{}
		}
		grid.Columns = append(grid.Columns, Column{
			RoomID:   room.ID,
			RoomName: room.Name,
			RoomType: room.Type,
			Cells:    cells,
		})
	}
	return grid, nil
}

// project maps a booking to its cell. The row is the hourly bucket holding
// the start time; offset and height are minute-proportional within the
// 60-minute bucket.
func project(b *domain.Booking) (Cell, bool) {
	start, err := timeslot.Parse(b.StartTime)
	if err != nil {
		return Cell{}, false
	}
	end, err := timeslot.Parse(b.EndTime)
	if err != nil {
		return Cell{}, false
	}
	if start < gridOpenMinutes || start >= gridCloseMinutes {
		return Cell{}, false
	}

	return Cell{
		BookingID: b.ID,
		Status:    b.Status,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Guests:    b.Guests,
		SlotIndex: (start - gridOpenMinutes) / bucketMinutes,
		OffsetPct: float64(start%bucketMinutes) / bucketMinutes * 100,
		HeightPct: float64(end-start) / bucketMinutes * 100,
	}, true
}

func slotLabels() []string {
	out := make([]string, 0, (gridCloseMinutes-gridOpenMinutes)/bucketMinutes)
	for m := gridOpenMinutes; m < gridCloseMinutes; m += bucketMinutes {
		out = append(out, timeslot.Format(m))
	}
	return out
}
