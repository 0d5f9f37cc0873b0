package create_booking

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
	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

var (
	testNow     = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	testTuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	testSunday  = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	saved := *b
	saved.ID = 100
	r.created = &saved
	return &saved, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, nil
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

func newTestUseCase(bookingRepo *fakeBookingRepo, blockRepo *fakeBlockRepo, users map[int64]*identity.User) *UseCase {
	engine := availability.NewEngine(domain.DefaultWeekSchedule(), domain.NewRecurringBlockSet(domain.DefaultRecurringBlocks()))
	uc := NewUseCase(
		bookingRepo,
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

func validRequest() *Request {
	return &Request{
		UserID:    10,
		ServiceID: 1,
		Date:      testTuesday,
		StartTime: "10:00",
		CreatedBy: 10,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	users := map[int64]*identity.User{
		10: {ID: 10, Name: "Carlos", Role: identity.RoleClient},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, users)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	b := resp.Booking
	assert.Equal(t, int64(100), b.ID)
	assert.Equal(t, int64(10), b.UserID)
	assert.Equal(t, "Carlos", b.ClientName)
	assert.Equal(t, "10:00", b.StartTime.String())
	assert.Equal(t, "10:30", b.EndTime.String())
	assert.Equal(t, "Corte de cabelo", b.ServiceName)
	assert.Equal(t, float64(35), b.ServicePrice)
	assert.Equal(t, domain.StatusActive, b.Status)
	assert.Equal(t, int64(10), b.CreatedBy)
}

func TestExecute_ExplicitClientName(t *testing.T) {
	repo := &fakeBookingRepo{}
	// Пустой реестр пользователей: при явном имени IdentityService не нужен
	uc := newTestUseCase(repo, &fakeBlockRepo{}, nil)

	req := validRequest()
	req.ClientName = ptr.Ptr("Walk-in")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Walk-in", resp.Booking.ClientName)
}

func TestExecute_AdminCreatesForAnotherUser(t *testing.T) {
	repo := &fakeBookingRepo{}
	users := map[int64]*identity.User{
		1:  {ID: 1, Name: "Barber", Role: identity.RoleAdmin},
		20: {ID: 20, Name: "Paulo", Role: identity.RoleClient},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, users)

	req := validRequest()
	req.UserID = 20
	req.CreatedBy = 1

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.Booking.UserID)
	assert.Equal(t, "Paulo", resp.Booking.ClientName)
	assert.Equal(t, int64(1), resp.Booking.CreatedBy)
}

func TestExecute_ClientCannotBookForAnotherUser(t *testing.T) {
	repo := &fakeBookingRepo{}
	users := map[int64]*identity.User{
		10: {ID: 10, Name: "Carlos", Role: identity.RoleClient},
		20: {ID: 20, Name: "Paulo", Role: identity.RoleClient},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, users)

	req := validRequest()
	req.UserID = 20
	req.CreatedBy = 10

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.created)
}

func TestExecute_EndTimeMismatch(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nil)

	req := validRequest()
	req.EndTime = ptr.Ptr(types.TimeString("11:00")) // услуга длится 30 минут

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EndTimeMatches(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, map[int64]*identity.User{10: {ID: 10, Name: "Carlos"}})

	req := validRequest()
	req.EndTime = ptr.Ptr(types.TimeString("10:30"))

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nil)

	req := validRequest()
	req.ServiceID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nil)

	req := validRequest()
	req.Date = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_TodayPassedStartTime(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nil)

	// testNow — 25 августа, 12:00
	req := validRequest()
	req.Date = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	req.StartTime = "11:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_SlotOccupied(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Status: domain.StatusActive, StartTime: "10:00", EndTime: "10:30"},
		},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, map[int64]*identity.User{10: {ID: 10, Name: "Carlos"}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Status: domain.StatusCancelled, StartTime: "10:00", EndTime: "10:30"},
		},
	}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, map[int64]*identity.User{10: {ID: 10, Name: "Carlos"}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, map[int64]*identity.User{10: {ID: 10, Name: "Carlos"}})

	req := validRequest()
	req.Date = testSunday

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_FullDayBlock(t *testing.T) {
	blockRepo := &fakeBlockRepo{blocks: []*domain.AdHocBlock{{Kind: domain.BlockFullDay}}}
	uc := newTestUseCase(&fakeBookingRepo{}, blockRepo, map[int64]*identity.User{10: {ID: 10, Name: "Carlos"}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ConcurrentInsertMapsToSlotNotAvailable(t *testing.T) {
	repo := &fakeBookingRepo{createErr: booking.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeBlockRepo{}, map[int64]*identity.User{10: {ID: 10, Name: "Carlos"}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nil)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero user id", func(req *Request) { req.UserID = 0 }},
		{"zero service id", func(req *Request) { req.ServiceID = 0 }},
		{"zero created by", func(req *Request) { req.CreatedBy = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"bad start time", func(req *Request) { req.StartTime = "25:00" }},
		{"notes too long", func(req *Request) {
			long := make([]byte, domain.MaxNotesLength+1)
			for i := range long {
				long[i] = 'x'
			}
			req.Notes = ptr.Ptr(string(long))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
