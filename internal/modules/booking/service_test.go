package booking

import (
	"context"
	"testing"

	"nerdspace/internal/domain"
	"nerdspace/internal/modules/pricing"
	"nerdspace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithGuard(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Quote(ctx context.Context, t domain.ServiceType, durationMinutes, guests int) (*pricing.Breakdown, error) {
	args := m.Called(ctx, t, durationMinutes, guests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Breakdown), args.Error(1)
}

type MockCoinCrediter struct {
	mock.Mock
}

func (m *MockCoinCrediter) Credit(ctx context.Context, userID, amount int64, reference string) error {
	args := m.Called(ctx, userID, amount, reference)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, userID, bookingID int64, date, start string) error {
	args := m.Called(ctx, userID, bookingID, date, start)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64) error {
	args := m.Called(ctx, userID, bookingID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error {
	args := m.Called(ctx, userID, bookingID, reason)
	return args.Error(0)
}

func podRoom() *domain.Room {
	return &domain.Room{ID: 10, Name: "Pod 1", Type: domain.ServicePodMono, Capacity: 1, IsActive: true}
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		RoomID:    10,
		UserID:    501,
		Date:      "2024-06-01",
		StartTime: "10:00",
		EndTime:   "11:30",
		Guests:    1,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	quoter := new(MockQuoter)
	notifs := new(MockNotificationSender)

	rooms.On("GetByID", mock.Anything, int64(10)).Return(podRoom(), nil)
	quoter.On("Quote", mock.Anything, domain.ServicePodMono, 90, 1).
		Return(&pricing.Breakdown{EstimatedAmount: 65000, DepositAmount: 32500, NerdCoinReward: 10}, nil)
	repo.On("CreateWithGuard", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyBookingCreated", mock.Anything, int64(501), int64(999), "2024-06-01", "10:00").Return(nil)

	svc := NewService(repo, rooms, quoter, nil, notifs)
	b, err := svc.CreateBooking(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(65000), b.EstimatedAmount)
	assert.Equal(t, int64(32500), b.DepositAmount)
	assert.Equal(t, int64(10), b.NerdCoinReward)
	notifs.AssertExpectations(t)
}

func TestCreateBooking_SlotTakenIsDistinctConflict(t *testing.T) {
	repo := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	quoter := new(MockQuoter)

	rooms.On("GetByID", mock.Anything, int64(10)).Return(podRoom(), nil)
	quoter.On("Quote", mock.Anything, domain.ServicePodMono, 90, 1).
		Return(&pricing.Breakdown{EstimatedAmount: 65000, DepositAmount: 32500}, nil)
	repo.On("CreateWithGuard", mock.Anything, mock.Anything).Return(repository.ErrSlotTaken)

	svc := NewService(repo, rooms, quoter, nil, nil)
	_, err := svc.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBooking_RejectsDegenerateRanges(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockRoomRepository), new(MockQuoter), nil, nil)

	cases := []CreateBookingRequest{
		{RoomID: 10, UserID: 1, Date: "bad-date", StartTime: "10:00", EndTime: "11:00", Guests: 1},
		{RoomID: 10, UserID: 1, Date: "2024-06-01", StartTime: "11:00", EndTime: "10:00", Guests: 1},
		{RoomID: 10, UserID: 1, Date: "2024-06-01", StartTime: "10:00", EndTime: "10:00", Guests: 1},
		{RoomID: 10, UserID: 1, Date: "2024-06-01", StartTime: "", EndTime: "11:00", Guests: 1},
		{RoomID: 10, UserID: 1, Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00", Guests: -1},
	}
	for _, req := range cases {
		_, err := svc.CreateBooking(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation, "req %+v", req)
	}
}

func TestCreateBooking_NoQuoteMeansNoBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	quoter := new(MockQuoter)

	rooms.On("GetByID", mock.Anything, int64(10)).Return(podRoom(), nil)
	quoter.On("Quote", mock.Anything, domain.ServicePodMono, 90, 1).Return(nil, pricing.ErrNoQuote)

	svc := NewService(repo, rooms, quoter, nil, nil)
	_, err := svc.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPricingUnavailable)
	repo.AssertNotCalled(t, "CreateWithGuard")
}

func TestCreateBooking_MeetingCapacityEnforced(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("GetByID", mock.Anything, int64(20)).Return(&domain.Room{
		ID: 20, Type: domain.ServiceMeeting, Capacity: 10, IsActive: true,
	}, nil)

	svc := NewService(new(MockBookingRepository), rooms, new(MockQuoter), nil, nil)
	req := validRequest()
	req.RoomID = 20
	req.Guests = 11

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_CompletionCreditsNerdCoins(t *testing.T) {
	repo := new(MockBookingRepository)
	coins := new(MockCoinCrediter)

	b := &domain.Booking{ID: 42, UserID: 501, Status: domain.BookingInProgress, NerdCoinReward: 10}
	repo.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, int64(42), domain.BookingCompleted).Return(nil)
	coins.On("Credit", mock.Anything, int64(501), int64(10), "booking:42").Return(nil)

	svc := NewService(repo, new(MockRoomRepository), new(MockQuoter), coins, nil)
	_, err := svc.UpdateStatus(context.Background(), 42, domain.BookingCompleted)

	assert.NoError(t, err)
	coins.AssertExpectations(t)
}

func TestUpdateStatus_RejectsIllegalTransitions(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, Status: domain.BookingPending}, nil)

	svc := NewService(repo, new(MockRoomRepository), new(MockQuoter), nil, nil)

	for _, target := range []domain.BookingStatus{
		domain.BookingCompleted,
		domain.BookingInProgress,
		domain.BookingNoShow,
		domain.BookingCancelled, // cancellation has its own path with a reason
	} {
		_, err := svc.UpdateStatus(context.Background(), 42, target)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition, "PENDING -> %s", target)
	}
}

func TestCancelBooking_RecordsReasonAndNotifies(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)

	before := &domain.Booking{ID: 42, UserID: 501, Status: domain.BookingConfirmed}
	repo.On("GetByID", mock.Anything, int64(42)).Return(before, nil)
	repo.On("CancelWithReason", mock.Anything, int64(42), "client request").Return(nil)
	notifs.On("NotifyBookingCancelled", mock.Anything, int64(501), int64(42), "client request").Return(nil)

	svc := NewService(repo, new(MockRoomRepository), new(MockQuoter), nil, notifs)
	_, err := svc.CancelBooking(context.Background(), 42, 501, "customer", "client request")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestCancelBooking_OtherUsersBookingIsHidden(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, UserID: 501, Status: domain.BookingConfirmed}, nil)

	svc := NewService(repo, new(MockRoomRepository), new(MockQuoter), nil, nil)
	_, err := svc.CancelBooking(context.Background(), 42, 999, "customer", "not mine")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_AdminMayCancelAnyBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, UserID: 501, Status: domain.BookingConfirmed}, nil)
	repo.On("CancelWithReason", mock.Anything, int64(42), "no-show risk").Return(nil)

	svc := NewService(repo, new(MockRoomRepository), new(MockQuoter), nil, nil)
	_, err := svc.CancelBooking(context.Background(), 42, 1, "admin", "no-show risk")
	assert.NoError(t, err)
}

func TestCancelBooking_TerminalStatesStayPut(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.BookingCancelled,
		domain.BookingCompleted,
		domain.BookingNoShow,
	} {
		repo := new(MockBookingRepository)
		repo.On("GetByID", mock.Anything, int64(42)).
			Return(&domain.Booking{ID: 42, Status: status}, nil)

		svc := NewService(repo, new(MockRoomRepository), new(MockQuoter), nil, nil)
		_, err := svc.CancelBooking(context.Background(), 42, 0, "admin", "too late")
		assert.ErrorIs(t, err, ErrInvalidStatusTransition, "status %s", status)
	}
}
