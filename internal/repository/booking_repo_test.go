package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"nerdspace/internal/domain"
	"nerdspace/internal/pkg/timeslot"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Registers the cgo-free "sqlite" database/sql driver used below.
	_ "modernc.org/sqlite"
)

func setupBookingRepo(t *testing.T) *BookingRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:booking_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Booking{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewBookingRepository(db)
}

func mustCreate(t *testing.T, repo *BookingRepository, b *domain.Booking) {
	t.Helper()
	if err := repo.CreateWithGuard(context.Background(), b); err != nil {
		t.Fatalf("CreateWithGuard(%+v) returned error: %v", b, err)
	}
}

func booking(roomID int64, date, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		RoomID:    roomID,
		UserID:    1,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Guests:    1,
		Status:    status,
	}
}

// Room 7 on 2024-06-01 holds a confirmed 10:00-11:00 and a cancelled
// 13:00-14:00. Only the confirmed one occupies the room.
func seedScenario(t *testing.T, repo *BookingRepository) {
	t.Helper()
	mustCreate(t, repo, booking(7, "2024-06-01", "10:00", "11:00", domain.BookingConfirmed))

	cancelled := booking(7, "2024-06-01", "13:00", "14:00", domain.BookingConfirmed)
	mustCreate(t, repo, cancelled)
	if err := repo.CancelWithReason(context.Background(), cancelled.ID, "changed plans"); err != nil {
		t.Fatalf("CancelWithReason returned error: %v", err)
	}
}

func TestBookedSlotsExcludesCancelled(t *testing.T) {
	repo := setupBookingRepo(t)
	seedScenario(t, repo)

	slots, err := repo.BookedSlots(context.Background(), 7, "2024-06-01")
	if err != nil {
		t.Fatalf("BookedSlots returned error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected exactly 1 occupied slot, got %d: %v", len(slots), slots)
	}
	want := timeslot.Slot{Start: "10:00", End: "11:00"}
	if slots[0] != want {
		t.Fatalf("expected %v, got %v", want, slots[0])
	}
}

func TestCreateWithGuardRejectsOverlap(t *testing.T) {
	repo := setupBookingRepo(t)
	seedScenario(t, repo)

	err := repo.CreateWithGuard(context.Background(), booking(7, "2024-06-01", "10:30", "11:30", domain.BookingPending))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestCreateWithGuardAllowsCancelledInterval(t *testing.T) {
	repo := setupBookingRepo(t)
	seedScenario(t, repo)

	mustCreate(t, repo, booking(7, "2024-06-01", "13:00", "14:00", domain.BookingPending))
}

func TestCreateWithGuardAllowsAdjacentRanges(t *testing.T) {
	repo := setupBookingRepo(t)
	seedScenario(t, repo)

	// Shared boundaries on half-open intervals are not conflicts.
	mustCreate(t, repo, booking(7, "2024-06-01", "09:00", "10:00", domain.BookingPending))
	mustCreate(t, repo, booking(7, "2024-06-01", "11:00", "12:00", domain.BookingPending))
}

func TestCreateWithGuardScopesToRoomAndDay(t *testing.T) {
	repo := setupBookingRepo(t)
	seedScenario(t, repo)

	// Same time, other room; same room, other day.
	mustCreate(t, repo, booking(8, "2024-06-01", "10:00", "11:00", domain.BookingPending))
	mustCreate(t, repo, booking(7, "2024-06-02", "10:00", "11:00", domain.BookingPending))
}

func TestCreateWithGuardEndOfDaySentinel(t *testing.T) {
	repo := setupBookingRepo(t)

	mustCreate(t, repo, booking(7, "2024-06-01", "23:00", "24:00", domain.BookingConfirmed))

	err := repo.CreateWithGuard(context.Background(), booking(7, "2024-06-01", "23:30", "24:00", domain.BookingPending))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken for range inside 23:00-24:00, got %v", err)
	}
}
