package get_booking

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"userId"`
	CourtID            string  `json:"courtId"`
	CenterID           string  `json:"centerId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	PlayerCount        int     `json:"playerCount"`
	BasePricePerHour   float64 `json:"basePricePerHour"`
	TotalPrice         float64 `json:"totalPrice"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"paymentStatus"`
	PaymentRef         *string `json:"paymentRef,omitempty"`
	SpecialRequests    *string `json:"specialRequests,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		CourtID:            b.CourtID,
		CenterID:           b.CenterID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		PlayerCount:        b.PlayerCount,
		BasePricePerHour:   b.BasePricePerHour,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		PaymentRef:         b.PaymentRef,
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
