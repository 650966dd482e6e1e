package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PCB-BookingService/pkg/types"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to paid", StatusPending, StatusPaid, false},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to no_show", StatusPending, StatusNoShow, false},
		{"confirmed to paid", StatusConfirmed, StatusPaid, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"paid to completed", StatusPaid, StatusCompleted, true},
		{"paid to cancelled", StatusPaid, StatusCancelled, true},
		{"paid to no_show", StatusPaid, StatusNoShow, true},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"no_show is terminal", StatusNoShow, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_CanMarkNoShow(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	booking := &Booking{
		Status:      StatusConfirmed,
		BookingDate: date,
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:30"),
	}

	beforeEnd := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	afterEnd := time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)

	// Only after the slot has ended
	assert.False(t, booking.CanMarkNoShow(beforeEnd))
	assert.True(t, booking.CanMarkNoShow(afterEnd))

	// Only from confirmed or paid
	booking.Status = StatusPaid
	assert.True(t, booking.CanMarkNoShow(afterEnd))

	booking.Status = StatusPending
	assert.False(t, booking.CanMarkNoShow(afterEnd))

	booking.Status = StatusCompleted
	assert.False(t, booking.CanMarkNoShow(afterEnd))
}

func TestBooking_CanSetPaymentPaid(t *testing.T) {
	b := &Booking{Status: StatusPending, PaymentStatus: PaymentPending}
	assert.True(t, b.CanSetPaymentPaid())

	b.Status = StatusConfirmed
	assert.True(t, b.CanSetPaymentPaid())

	b.Status = StatusPaid
	assert.False(t, b.CanSetPaymentPaid())

	// Already paid
	b.Status = StatusConfirmed
	b.PaymentStatus = PaymentPaid
	assert.False(t, b.CanSetPaymentPaid())
}

func TestBooking_HoldsSlot(t *testing.T) {
	holds := []BookingStatus{StatusPending, StatusConfirmed, StatusPaid}
	for _, status := range holds {
		b := &Booking{Status: status}
		assert.True(t, b.HoldsSlot(), "status %s should hold the slot", status)
	}

	free := []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow}
	for _, status := range free {
		b := &Booking{Status: status}
		assert.False(t, b.HoldsSlot(), "status %s should not hold the slot", status)
	}
}

func TestBooking_ScheduledTimes(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:30"),
	}

	assert.Equal(t, time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC), b.ScheduledStart())
	assert.Equal(t, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC), b.ScheduledEnd())
}

func TestSlotHold_Overlaps(t *testing.T) {
	hold := &SlotHold{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:30"),
	}

	// Real intersection
	assert.True(t, hold.Overlaps(types.TimeString("10:00"), types.TimeString("11:30")))
	assert.True(t, hold.Overlaps(types.TimeString("08:30"), types.TimeString("09:30")))
	assert.True(t, hold.Overlaps(types.TimeString("09:30"), types.TimeString("10:00")))

	// Adjacent intervals do not overlap
	assert.False(t, hold.Overlaps(types.TimeString("10:30"), types.TimeString("12:00")))
	assert.False(t, hold.Overlaps(types.TimeString("07:30"), types.TimeString("09:00")))

	// Disjoint
	assert.False(t, hold.Overlaps(types.TimeString("12:00"), types.TimeString("13:30")))
}
