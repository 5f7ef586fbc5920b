package repository

import (
	"context"
	"errors"
	"time"

	"nerdspace/internal/domain"
	"nerdspace/internal/pkg/timeslot"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlotTaken is returned when a write lost the race for a time range.
// Callers surface it as a distinct conflict so the user picks a new slot
// instead of retrying the same one.
var ErrSlotTaken = errors.New("time slot is already booked")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookedSlots returns the occupied intervals for a room and day, excluding
// cancelled bookings. Clock strings compare lexicographically ("24:00" sorts
// last), so ordering and overlap tests run directly on the columns.
func (r *BookingRepository) BookedSlots(ctx context.Context, roomID int64, date string) ([]timeslot.Slot, error) {
	var rows []struct {
		StartTime string
		EndTime   string
	}
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("start_time, end_time").
		Where("room_id = ?", roomID).
		Where("booking_date = ?", date).
		Where("status <> ?", domain.BookingCancelled).
		Order("start_time").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]timeslot.Slot, 0, len(rows))
	for _, row := range rows {
		out = append(out, timeslot.Slot{Start: row.StartTime, End: row.EndTime})
	}
	return out, nil
}

// CreateWithGuard inserts the booking only if its interval is still free.
// The overlap re-check and the insert share one transaction: existing rows
// for the (room, day) pair are locked first, so two concurrent submissions
// for the same slot serialize and the loser gets ErrSlotTaken.
func (r *BookingRepository) CreateWithGuard(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked []domain.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND booking_date = ?", b.RoomID, b.Date).
			Find(&locked).Error; err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&domain.Booking{}).
			Where("room_id = ?", b.RoomID).
			Where("booking_date = ?", b.Date).
			Where("status <> ?", domain.BookingCancelled).
			Where("start_time < ? AND end_time > ?", b.EndTime, b.StartTime).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotTaken
		}

		return tx.Create(b).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation, 23P01 exclusion_violation: a DB-level
		// no-overbooking constraint fired before our count did.
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              domain.BookingCancelled,
			"cancellation_reason": reason,
			"cancelled_at":        &now,
		}).Error
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out)
	return out, tx.Error
}

// ListByDate returns every booking for the day across all rooms, cancelled
// ones included; the calendar layer decides what to render.
func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("booking_date = ?", date).
		Order("room_id, start_time").
		Find(&out)
	return out, tx.Error
}
