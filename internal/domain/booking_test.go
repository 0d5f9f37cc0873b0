package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

func TestBooking_StatusTransitions(t *testing.T) {
	active := &Booking{Status: StatusActive}
	assert.True(t, active.IsActive())
	assert.True(t, active.CanBeCancelled())
	assert.True(t, active.CanBeCompleted())
	assert.True(t, active.CanBeRescheduled())

	completed := &Booking{Status: StatusCompleted}
	assert.False(t, completed.IsActive())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, completed.CanBeCompleted())
	assert.False(t, completed.CanBeRescheduled())

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, cancelled.CanBeCompleted())
	assert.False(t, cancelled.CanBeRescheduled())
}

func TestBooking_DurationMinutes(t *testing.T) {
	b := &Booking{StartTime: "10:00", EndTime: "11:30"}
	assert.Equal(t, 90, b.DurationMinutes())
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := DefaultCatalog()

	s, err := catalog.ByID(3)
	assert.NoError(t, err)
	assert.Equal(t, "Cabelo + barba", s.Name)
	assert.Equal(t, 60, s.DurationMinutes)

	_, err = catalog.ByID(99)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	s, err = catalog.ByName("Barba")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), s.ID)

	_, err = catalog.ByName("unknown")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAdHocBlock_OverlapsInterval(t *testing.T) {
	rangeBlock := &AdHocBlock{
		Kind:      BlockRange,
		StartTime: ptr.Ptr(types.TimeString("10:00")),
		EndTime:   ptr.Ptr(types.TimeString("12:00")),
	}
	assert.True(t, rangeBlock.OverlapsInterval(11*60, 11*60+30))
	assert.False(t, rangeBlock.OverlapsInterval(12*60, 12*60+30))

	fullDay := &AdHocBlock{Kind: BlockFullDay}
	assert.True(t, fullDay.IsFullDay())
	assert.True(t, fullDay.OverlapsInterval(8*60, 8*60+30))

	assert.True(t, HasFullDayBlock([]*AdHocBlock{rangeBlock, fullDay}))
	assert.False(t, HasFullDayBlock([]*AdHocBlock{rangeBlock}))
}
