package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

func classifiedBooking(id string, status domain.BookingStatus, date time.Time, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		Status:      status,
		BookingDate: date,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
	}
}

func TestClassifyBookings_Partition(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	bookings := []*domain.Booking{
		// Future slot, active status
		classifiedBooking("upcoming-1", domain.StatusConfirmed, tomorrow, "09:00", "10:30"),
		// Today, slot has not ended yet
		classifiedBooking("upcoming-2", domain.StatusPaid, today, "13:00", "14:30"),
		// Slot ended earlier today
		classifiedBooking("past-1", domain.StatusConfirmed, today, "09:00", "10:30"),
		// Yesterday
		classifiedBooking("past-2", domain.StatusCompleted, yesterday, "09:00", "10:30"),
		// no_show goes to past regardless of time
		classifiedBooking("past-3", domain.StatusNoShow, tomorrow, "09:00", "10:30"),
		// Cancelled wins over everything, even for future slots
		classifiedBooking("cancelled-1", domain.StatusCancelled, tomorrow, "09:00", "10:30"),
		classifiedBooking("cancelled-2", domain.StatusCancelled, yesterday, "09:00", "10:30"),
	}

	grouped := classifyBookings(bookings, now)

	ids := func(list []*domain.Booking) []string {
		result := make([]string, 0, len(list))
		for _, b := range list {
			result = append(result, b.ID)
		}
		return result
	}

	assert.ElementsMatch(t, []string{"upcoming-1", "upcoming-2"}, ids(grouped.Upcoming))
	assert.ElementsMatch(t, []string{"past-1", "past-2", "past-3"}, ids(grouped.Past))
	assert.ElementsMatch(t, []string{"cancelled-1", "cancelled-2"}, ids(grouped.Cancelled))

	// Every booking lands in exactly one group
	total := len(grouped.Upcoming) + len(grouped.Past) + len(grouped.Cancelled)
	assert.Equal(t, len(bookings), total)
}

func TestClassifyBookings_SlotEndingExactlyNow(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// End == now counts as past
	grouped := classifyBookings([]*domain.Booking{
		classifiedBooking("b1", domain.StatusConfirmed, today, "09:00", "10:30"),
	}, now)

	require.Len(t, grouped.Past, 1)
	assert.Empty(t, grouped.Upcoming)
}

func TestClassifyBookings_Empty(t *testing.T) {
	grouped := classifyBookings(nil, time.Now())

	assert.NotNil(t, grouped.Upcoming)
	assert.NotNil(t, grouped.Past)
	assert.NotNil(t, grouped.Cancelled)
	assert.Empty(t, grouped.Upcoming)
}
