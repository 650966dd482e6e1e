package domain

import (
	"time"

	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusPaid      BookingStatus = "paid"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a court reservation in the system
type Booking struct {
	ID       string
	UserID   string
	CourtID  string
	CenterID string

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	PlayerCount      int
	BasePricePerHour float64
	TotalPrice       float64

	Status        BookingStatus
	PaymentStatus PaymentStatus
	PaymentRef    *string

	SpecialRequests *string
	IdempotencyKey  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// statusTransitions таблица допустимых переходов статусов
// no_show дополнительно ограничен по времени (см. CanMarkNoShow)
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled, StatusNoShow},
	StatusPaid:      {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransitionTo returns true if the status transition is present in the table
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanMarkNoShow returns true if the booking may be marked as no_show at the given moment
// Допустимо только из confirmed/paid и только после окончания слота
func (b *Booking) CanMarkNoShow(now time.Time) bool {
	if b.Status != StatusConfirmed && b.Status != StatusPaid {
		return false
	}
	return b.ScheduledEnd().Before(now)
}

// CanSetPaymentPaid returns true if payment_status may move pending -> paid
// Оплата возможна только пока бронирование pending или confirmed
func (b *Booking) CanSetPaymentPaid() bool {
	return b.PaymentStatus == PaymentPending &&
		(b.Status == StatusPending || b.Status == StatusConfirmed)
}

// HoldsSlot returns true if the booking currently occupies its slot
// in the availability index
func (b *Booking) HoldsSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusPaid
}

// IsActive returns true if the booking is in an active (slot-relevant) state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.CanTransitionTo(StatusCancelled)
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsFinished returns true if the booking reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// ScheduledStart returns the full start timestamp of the reserved slot
func (b *Booking) ScheduledStart() time.Time {
	return combineDateTime(b.BookingDate, b.StartTime)
}

// ScheduledEnd returns the full end timestamp of the reserved slot
func (b *Booking) ScheduledEnd() time.Time {
	return combineDateTime(b.BookingDate, b.EndTime)
}

// combineDateTime склеивает дату бронирования и время слота в одну метку времени
func combineDateTime(date time.Time, t types.TimeString) time.Time {
	minutes, err := t.Minutes()
	if err != nil {
		// Некорректное время слота - считаем началом дня, чтобы не паниковать на чтении
		minutes = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(minutes) * time.Minute)
}

// CenterBookingsFilter фильтр для получения бронирований центра
type CenterBookingsFilter struct {
	CenterID        string         // Обязательный параметр
	CourtID         *string        // Фильтр по корту (опционально, если nil - все корты)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
