package cancel_booking

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID                 string  `json:"id"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"paymentStatus"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(bookingID, requestedBy string) *models.CancelRequest {
	return &models.CancelRequest{
		BookingID:   bookingID,
		RequestedBy: requestedBy,
		Reason:      r.Reason,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *CancelBookingResponse {
	resp := &CancelBookingResponse{
		ID:                 b.ID,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CancellationReason: b.CancellationReason,
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
