package get_available_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeevlv/barber-booking-service/internal/availability"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
)

var testNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

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

func (r *fakeBlockRepo) GetByPeriod(_ context.Context, _, _ time.Time) ([]*domain.AdHocBlock, error) {
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

func TestExecute_MonthSummary(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	blockRepo := &fakeBlockRepo{}
	uc := newTestUseCase(bookingRepo, blockRepo)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Year: 2026, Month: 9})
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 9, resp.Month)

	// Сентябрь 2026: 30 дней, 4 воскресенья (6, 13, 20, 27) — выходные
	assert.Len(t, resp.AvailableDays, 26)
	for _, day := range resp.AvailableDays {
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}

	// Весь месяц — по одному запросу к каждому хранилищу
	assert.Equal(t, 1, bookingRepo.calls)
	assert.Equal(t, 1, blockRepo.calls)
}

func TestExecute_PastDaysSkipped(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	// testNow — 25 августа: доступны только 25-31 минус воскресенье 30-го
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Year: 2026, Month: 8})
	require.NoError(t, err)

	require.NotEmpty(t, resp.AvailableDays)
	for _, day := range resp.AvailableDays {
		assert.False(t, day.Before(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)))
	}
}

func TestExecute_FullyBlockedDayExcluded(t *testing.T) {
	blocked := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	blockRepo := &fakeBlockRepo{
		blocks: []*domain.AdHocBlock{{Kind: domain.BlockFullDay, Date: blocked}},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, blockRepo)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Year: 2026, Month: 9})
	require.NoError(t, err)

	for _, day := range resp.AvailableDays {
		assert.NotEqual(t, blocked, day)
	}
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Year: 2026, Month: 9})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero service id", &Request{ServiceID: 0, Year: 2026, Month: 9}},
		{"year too small", &Request{ServiceID: 1, Year: 1999, Month: 9}},
		{"year too large", &Request{ServiceID: 1, Year: 2101, Month: 9}},
		{"month too small", &Request{ServiceID: 1, Year: 2026, Month: 0}},
		{"month too large", &Request{ServiceID: 1, Year: 2026, Month: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
