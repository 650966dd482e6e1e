package models

import (
	"github.com/m04kA/PCB-BookingService/internal/domain"
)

// CancelRequest запрос на отмену бронирования
type CancelRequest struct {
	BookingID   string // ID бронирования
	RequestedBy string // ID пользователя, выполняющего отмену
	Reason      string // Причина отмены
}

// ConfirmRequest запрос на подтверждение бронирования менеджером
type ConfirmRequest struct {
	BookingID   string  // ID бронирования
	RequestedBy string  // ID менеджера
	MarkPaid    bool    // Зафиксировать оплату вместе с подтверждением
	PaymentRef  *string // Ссылка на платёж во внешней системе (при MarkPaid)
}

// UpdateStatusRequest запрос на перевод бронирования в завершающий статус
type UpdateStatusRequest struct {
	BookingID   string               // ID бронирования
	RequestedBy string               // ID менеджера
	Status      domain.BookingStatus // Целевой статус (completed или no_show)
}

// UserBookingsRequest запрос на список бронирований пользователя
type UserBookingsRequest struct {
	RequestedBy string                // ID пользователя, выполняющего запрос
	UserID      string                // ID владельца бронирований
	Status      *domain.BookingStatus // Фильтр по статусу (опционально)
	Limit       int                   // Ограничение количества (0 - без ограничения)
}

// CenterBookingsRequest запрос на список бронирований центра
type CenterBookingsRequest struct {
	RequestedBy string // ID менеджера
	Filter      domain.CenterBookingsFilter
}

// GroupedBookings бронирования пользователя, разбитые на непересекающиеся группы.
// Каждое бронирование попадает ровно в одну группу
type GroupedBookings struct {
	Upcoming  []*domain.Booking // Активные бронирования, слот которых ещё не закончился
	Past      []*domain.Booking // Завершённые по времени или по статусу (completed, no_show)
	Cancelled []*domain.Booking // Отменённые
}
