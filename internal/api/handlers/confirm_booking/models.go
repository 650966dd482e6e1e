package confirm_booking

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	MarkPaid   bool    `json:"markPaid,omitempty"`   // Зафиксировать оплату вместе с подтверждением
	PaymentRef *string `json:"paymentRef,omitempty"` // Ссылка на платёж во внешней системе
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentRef    *string `json:"paymentRef,omitempty"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ConfirmBookingRequest) ToServiceRequest(bookingID, requestedBy string) *models.ConfirmRequest {
	return &models.ConfirmRequest{
		BookingID:   bookingID,
		RequestedBy: requestedBy,
		MarkPaid:    r.MarkPaid,
		PaymentRef:  r.PaymentRef,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		ID:            b.ID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentRef:    b.PaymentRef,
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
