package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	bookingRepo "github.com/avdeevlv/barber-booking-service/internal/infra/storage/booking"
	"github.com/avdeevlv/barber-booking-service/internal/integrations/identity"
	"github.com/avdeevlv/barber-booking-service/internal/service/bookings/models"
	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
)

type fakeRepo struct {
	byID          map[int64]*domain.Booking
	byUser        []*domain.Booking
	filtered      []*domain.Booking
	cancelledID   int64
	cancelReason  string
	updatedStatus domain.BookingStatus
	updatedNotes  *string
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.byUser, nil
}

func (r *fakeRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return r.filtered, nil
}

func (r *fakeRepo) UpdateNotes(_ context.Context, _ int64, notes *string) error {
	r.updatedNotes = notes
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	r.updatedStatus = status
	return nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	r.cancelledID = id
	r.cancelReason = reason
	return nil
}

type fakeIdentity struct {
	users map[int64]*identity.User
}

func (c *fakeIdentity) GetUser(_ context.Context, userID int64) (*identity.User, error) {
	user, ok := c.users[userID]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func testUsers() map[int64]*identity.User {
	return map[int64]*identity.User{
		1:  {ID: 1, Name: "Barber", Role: identity.RoleAdmin},
		10: {ID: 10, Name: "Carlos", Role: identity.RoleClient},
		11: {ID: 11, Name: "Other", Role: identity.RoleClient},
	}
}

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:          42,
		UserID:      10,
		ClientName:  "Carlos",
		BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "10:30",
		ServiceName: "Corte de cabelo",
		Status:      domain.StatusActive,
	}
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, &fakeIdentity{users: testUsers()}, &nopLogger{})
}

func TestGetByID_Owner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 42, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-01", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_Admin(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 42, 1)
	assert.NoError(t, err)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 42, 11)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Booking{}})

	_, err := svc.GetByID(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_Success(t *testing.T) {
	repo := &fakeRepo{byUser: []*domain.Booking{activeBooking()}}
	svc := newTestService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetAgenda_AdminOnly(t *testing.T) {
	repo := &fakeRepo{filtered: []*domain.Booking{activeBooking()}}
	svc := newTestService(repo)

	resp, err := svc.GetAgenda(context.Background(), &models.GetAgendaRequest{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetAgenda(context.Background(), &models.GetAgendaRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_Owner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             10,
		CancellationReason: "не смогу прийти",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.cancelledID)
	assert.Equal(t, "не смогу прийти", repo.cancelReason)
}

func TestCancel_CompletedBooking(t *testing.T) {
	completed := activeBooking()
	completed.Status = domain.StatusCompleted

	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: completed}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ForeignBookingDenied(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 11})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestComplete_Admin(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	svc := newTestService(repo)

	err := svc.Complete(context.Background(), 42, &models.CompleteBookingRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestComplete_NonAdminDenied(t *testing.T) {
	// Даже владелец не может завершить своё бронирование
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	svc := newTestService(repo)

	err := svc.Complete(context.Background(), 42, &models.CompleteBookingRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestComplete_CancelledBooking(t *testing.T) {
	cancelled := activeBooking()
	cancelled.Status = domain.StatusCancelled

	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: cancelled}}
	svc := newTestService(repo)

	err := svc.Complete(context.Background(), 42, &models.CompleteBookingRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestUpdateNotes_AnyStatus(t *testing.T) {
	// Заметки можно менять и у завершенного бронирования
	completed := activeBooking()
	completed.Status = domain.StatusCompleted

	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: completed}}
	svc := newTestService(repo)

	err := svc.UpdateNotes(context.Background(), 42, &models.UpdateNotesRequest{
		UserID: 10,
		Notes:  ptr.Ptr("оплатил вперед"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedNotes)
	assert.Equal(t, "оплатил вперед", *repo.updatedNotes)
}

func TestUpdateNotes_TooLong(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Booking{42: activeBooking()}})

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}

	err := svc.UpdateNotes(context.Background(), 42, &models.UpdateNotesRequest{
		UserID: 10,
		Notes:  ptr.Ptr(string(long)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
