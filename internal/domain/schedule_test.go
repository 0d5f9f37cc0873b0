package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sunday  = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	monday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
)

func TestDefaultWeekSchedule_ClosedOnSunday(t *testing.T) {
	schedule := DefaultWeekSchedule()

	assert.False(t, schedule.IsOpen(sunday))
	assert.Nil(t, schedule.OperatingWindow(sunday))
}

func TestDefaultWeekSchedule_MondayShortDay(t *testing.T) {
	schedule := DefaultWeekSchedule()

	window := schedule.OperatingWindow(monday)
	require.NotNil(t, window)
	assert.Equal(t, "15:00", window.Start.String())
	assert.Equal(t, "19:00", window.End.String())
	assert.Nil(t, window.Break)
}

func TestDefaultWeekSchedule_FullDayWithBreak(t *testing.T) {
	schedule := DefaultWeekSchedule()

	window := schedule.OperatingWindow(tuesday)
	require.NotNil(t, window)
	assert.Equal(t, "09:00", window.Start.String())
	assert.Equal(t, "20:00", window.End.String())
	require.NotNil(t, window.Break)
	assert.Equal(t, "13:00", window.Break.Start.String())
	assert.Equal(t, "15:00", window.Break.End.String())
}

func TestOperatingWindow_Contains(t *testing.T) {
	window := OperatingWindow{
		Start: "09:00",
		End:   "20:00",
		Break: &BreakWindow{Start: "13:00", End: "15:00"},
	}

	assert.True(t, window.Contains(9*60))       // открытие включено
	assert.True(t, window.Contains(12*60+30))   // до перерыва
	assert.False(t, window.Contains(13*60))     // начало перерыва исключено
	assert.False(t, window.Contains(14*60+30))  // внутри перерыва
	assert.True(t, window.Contains(15*60))      // конец перерыва включен
	assert.False(t, window.Contains(20*60))     // закрытие исключено (полуоткрытое окно)
	assert.False(t, window.Contains(8*60+59))   // до открытия
}

func TestWeekSchedule_IsWithinWindow(t *testing.T) {
	schedule := DefaultWeekSchedule()

	assert.True(t, schedule.IsWithinWindow(tuesday, 10*60))
	assert.False(t, schedule.IsWithinWindow(tuesday, 13*60+30))
	assert.False(t, schedule.IsWithinWindow(sunday, 10*60))
}
