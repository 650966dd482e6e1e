package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/ptr"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

func openHours(open, close string) catalogservice.DaySchedule {
	return catalogservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(open),
		CloseTime: ptr.Ptr(close),
	}
}

func TestGenerateTimeSlots_StrideShorterThanDuration(t *testing.T) {
	// 08:00-12:00 with 90-minute slots on a 30-minute grid:
	// candidates whose end exceeds closing time are dropped entirely
	requestDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(openHours("08:00", "12:00"), 90, 30, requestDate, now, 60)
	require.NoError(t, err)

	expected := []types.TimeString{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30"}
	assert.Equal(t, expected, slots)
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	requestDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	first, err := generateTimeSlots(openHours("09:00", "22:00"), 90, 30, requestDate, now, 60)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := generateTimeSlots(openHours("09:00", "22:00"), 90, 30, requestDate, now, 60)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Ascending start times
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].IsBefore(first[i]))
	}
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	requestDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(openHours("08:00", "22:00"), 90, 30, requestDate, now, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_ClosedDay(t *testing.T) {
	requestDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(catalogservice.DaySchedule{IsOpen: false}, 90, 30, requestDate, now, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_EmptyWorkingWindow(t *testing.T) {
	requestDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	// Window shorter than one slot yields no candidates, not an error
	slots, err := generateTimeSlots(openHours("08:00", "09:00"), 90, 30, requestDate, now, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_SameDayNoticeFilter(t *testing.T) {
	// Booking today at 10:00 with 60 minutes notice: slots before 11:00 are dropped
	requestDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(openHours("08:00", "14:00"), 90, 30, requestDate, now, 60)
	require.NoError(t, err)

	expected := []types.TimeString{"11:00", "11:30", "12:00", "12:30"}
	assert.Equal(t, expected, slots)
}

func TestAnnotateSlots(t *testing.T) {
	starts := []types.TimeString{"08:00", "08:30", "09:00", "10:30"}
	holds := []*domain.SlotHold{
		{StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:30"), BookingID: "b1"},
	}

	slots := annotateSlots(starts, 90, 40.0, holds)
	require.Len(t, slots, 4)

	// 90 minutes at 40/hour
	for _, s := range slots {
		assert.Equal(t, 60.0, s.Price)
		assert.Equal(t, 90, s.DurationMinutes)
	}

	// 08:00-09:30 overlaps the 09:00-10:30 hold
	assert.False(t, slots[0].IsAvailable)
	// 08:30-10:00 overlaps
	assert.False(t, slots[1].IsAvailable)
	// 09:00-10:30 is exactly the hold
	assert.False(t, slots[2].IsAvailable)
	// 10:30-12:00 touches the hold boundary, no overlap
	assert.True(t, slots[3].IsAvailable)
}

func TestAnnotateSlots_NoHolds(t *testing.T) {
	starts := []types.TimeString{"08:00", "08:30"}

	slots := annotateSlots(starts, 90, 40.0, nil)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
	}
}
