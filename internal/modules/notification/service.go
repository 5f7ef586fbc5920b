package notification

import (
	"context"
	"fmt"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, t Type, title, message string) error {
	n := &Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	return s.repo.Create(ctx, n)
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) NotifyBookingCreated(ctx context.Context, userID, bookingID int64, date, start string) error {
	return s.Create(
		ctx,
		userID,
		TypeBookingCreated,
		"Booking received",
		fmt.Sprintf("Your booking #%d for %s at %s is pending confirmation", bookingID, date, start),
	)
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64) error {
	return s.Create(
		ctx,
		userID,
		TypeBookingConfirmed,
		"Booking confirmed",
		fmt.Sprintf("Booking #%d is confirmed, see you there", bookingID),
	)
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error {
	msg := fmt.Sprintf("Booking #%d was cancelled", bookingID)
	if reason != "" {
		msg += ": " + reason
	}
	return s.Create(ctx, userID, TypeBookingCancelled, "Booking cancelled", msg)
}
