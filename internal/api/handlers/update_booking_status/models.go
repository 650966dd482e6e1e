package update_booking_status

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "completed" или "no_show"
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(bookingID, requestedBy string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		BookingID:   bookingID,
		RequestedBy: requestedBy,
		Status:      domain.BookingStatus(r.Status),
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:            b.ID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
