package bookings

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

// classifyBookings разбивает бронирования на три непересекающиеся группы.
// Правила применяются по порядку, поэтому каждое бронирование попадает
// ровно в одну группу:
//   - cancelled: статус cancelled (независимо от времени слота)
//   - past: слот закончился (конец <= now) либо статус completed/no_show
//   - upcoming: всё остальное
func classifyBookings(bookings []*domain.Booking, now time.Time) *models.GroupedBookings {
	grouped := &models.GroupedBookings{
		Upcoming:  make([]*domain.Booking, 0),
		Past:      make([]*domain.Booking, 0),
		Cancelled: make([]*domain.Booking, 0),
	}

	for _, b := range bookings {
		switch {
		case b.IsCancelled():
			grouped.Cancelled = append(grouped.Cancelled, b)
		case isPast(b, now):
			grouped.Past = append(grouped.Past, b)
		default:
			grouped.Upcoming = append(grouped.Upcoming, b)
		}
	}

	return grouped
}

// isPast проверяет, что бронирование относится к прошедшим
func isPast(b *domain.Booking, now time.Time) bool {
	if b.Status == domain.StatusCompleted || b.Status == domain.StatusNoShow {
		return true
	}
	return !b.ScheduledEnd().After(now)
}
