package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeevlv/barber-booking-service/internal/availability"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
)

var (
	testNow     = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	testTuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	testMonday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	calls    int
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	r.calls++
	return r.bookings, nil
}

type fakeBlockRepo struct {
	blocks []*domain.AdHocBlock
	calls  int
}

func (r *fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.AdHocBlock, error) {
	r.calls++
	return r.blocks, nil
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

func newTestUseCase(bookingRepo *fakeBookingRepo, blockRepo *fakeBlockRepo) *UseCase {
	engine := availability.NewEngine(domain.DefaultWeekSchedule(), domain.NewRecurringBlockSet(domain.DefaultRecurringBlocks()))
	uc := NewUseCase(bookingRepo, blockRepo, engine, domain.DefaultCatalog(), &nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_ReturnsSlots(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ServiceID)
	assert.Equal(t, "Corte de cabelo", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)

	require.Len(t, resp.Slots, 8)
	assert.Equal(t, "15:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "15:30", resp.Slots[0].EndTime.String())
	assert.Equal(t, "18:30", resp.Slots[7].StartTime.String())
}

func TestExecute_OccupiedSlotExcluded(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Status: domain.StatusActive, StartTime: "16:00", EndTime: "16:30"},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testMonday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 7)
	for _, s := range resp.Slots {
		assert.NotEqual(t, "16:00", s.StartTime.String())
	}
}

func TestExecute_PastDateEmptyWithoutStorageCalls(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	blockRepo := &fakeBlockRepo{}
	uc := newTestUseCase(bookingRepo, blockRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Zero(t, bookingRepo.calls)
	assert.Zero(t, blockRepo.calls)
}

func TestExecute_ClosedDayEmpty(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), // воскресенье
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: testTuesday})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testTuesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
