package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeevlv/barber-booking-service/internal/availability"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/internal/infra/storage/booking"
	"github.com/avdeevlv/barber-booking-service/internal/integrations/identity"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

var (
	testNow     = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	testTuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	byID        map[int64]*domain.Booking
	onDate      []*domain.Booking
	updateErr   error
	updatedID   int64
	updatedDate time.Time
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return r.onDate, nil
}

func (r *fakeBookingRepo) UpdateSchedule(_ context.Context, id int64, date time.Time, _, _ types.TimeString) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updatedID = id
	r.updatedDate = date
	return nil
}

type fakeBlockRepo struct {
	blocks []*domain.AdHocBlock
}

func (r *fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.AdHocBlock, error) {
	return r.blocks, nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:          42,
		UserID:      10,
		ClientName:  "Carlos",
		BookingDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "10:30",
		ServiceName: "Corte de cabelo",
		Status:      domain.StatusActive,
	}
}

func newTestUseCase(repo *fakeBookingRepo, blockRepo *fakeBlockRepo, users map[int64]*identity.User) *UseCase {
	engine := availability.NewEngine(domain.DefaultWeekSchedule(), domain.NewRecurringBlockSet(domain.DefaultRecurringBlocks()))
	uc := NewUseCase(
		repo,
		blockRepo,
		engine,
		domain.DefaultCatalog(),
		&fakeTxManager{},
		&fakeIdentity{users: users},
		&nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   10,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, testTuesday, b.BookingDate)
	assert.Equal(t, "16:00", b.StartTime.String())
	assert.Equal(t, "16:30", b.EndTime.String())
	assert.Equal(t, int64(42), repo.updatedID)
	assert.Equal(t, testTuesday, repo.updatedDate)
}

func TestExecute_SelfOverlapAllowed(t *testing.T) {
	// Перенос внутри собственного интервала: бронирование уже стоит
	// на целевую дату и пересекается с новым временем
	current := activeBooking()
	current.BookingDate = testTuesday
	current.StartTime = "16:00"
	current.EndTime = "16:30"

	repo := &fakeBookingRepo{
		byID:   map[int64]*domain.Booking{42: current},
		onDate: []*domain.Booking{current},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   10,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	assert.NoError(t, err)
}

func TestExecute_AdminCanReschedule(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	admins := map[int64]*identity.User{1: {ID: 1, Name: "Barber", Role: identity.RoleAdmin}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, admins)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   1,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	assert.NoError(t, err)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	clients := map[int64]*identity.User{11: {ID: 11, Name: "Other", Role: identity.RoleClient}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, clients)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   11,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 99,
		ActorID:   10,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledBookingCannotBeRescheduled(t *testing.T) {
	cancelled := activeBooking()
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: cancelled}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   10,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_TargetSlotTaken(t *testing.T) {
	other := &domain.Booking{ID: 7, Status: domain.StatusActive, StartTime: "16:00", EndTime: "16:30"}
	repo := &fakeBookingRepo{
		byID:   map[int64]*domain.Booking{42: activeBooking()},
		onDate: []*domain.Booking{other},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   10,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastDate(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: activeBooking()}}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   10,
		Date:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		StartTime: "16:00",
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_ConcurrentUpdateMapsToSlotNotAvailable(t *testing.T) {
	repo := &fakeBookingRepo{
		byID:      map[int64]*domain.Booking{42: activeBooking()},
		updateErr: booking.ErrSlotTaken,
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		ActorID:   10,
		Date:      testTuesday,
		StartTime: "16:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
