package create_booking

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          string           // ID пользователя
	CourtID         string           // ID корта
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "09:00")
	EndTime         types.TimeString // Время окончания слота (например, "10:30")
	PlayerCount     int              // Количество игроков
	RequestedPrice  *float64         // Цена, которую видел клиент (только подсказка для сверки)
	SpecialRequests *string          // Пожелания к бронированию (опционально)
	IdempotencyKey  *string          // Ключ идемпотентности для безопасного повтора (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       string // ID созданного бронирования
	UserID   string // ID пользователя
	CourtID  string // ID корта
	CenterID string // ID центра

	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания

	PlayerCount      int     // Количество игроков
	BasePricePerHour float64 // Базовая цена корта за час
	TotalPrice       float64 // Итоговая цена (серверный расчёт)

	Status        string // Статус бронирования
	PaymentStatus string // Статус оплаты

	SpecialRequests *string // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// toResponse конвертирует доменную модель в ответ use case
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		UserID:           b.UserID,
		CourtID:          b.CourtID,
		CenterID:         b.CenterID,
		BookingDate:      b.BookingDate,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		PlayerCount:      b.PlayerCount,
		BasePricePerHour: b.BasePricePerHour,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
