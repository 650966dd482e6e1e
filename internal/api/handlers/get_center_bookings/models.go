package get_center_bookings

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	CourtID         string  `json:"courtId"`
	CenterID        string  `json:"centerId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	PlayerCount     int     `json:"playerCount"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(list []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, &BookingResponse{
			ID:              b.ID,
			UserID:          b.UserID,
			CourtID:         b.CourtID,
			CenterID:        b.CenterID,
			BookingDate:     b.BookingDate.Format(domain.DateFormat),
			StartTime:       b.StartTime.String(),
			EndTime:         b.EndTime.String(),
			PlayerCount:     b.PlayerCount,
			TotalPrice:      b.TotalPrice,
			Status:          string(b.Status),
			PaymentStatus:   string(b.PaymentStatus),
			SpecialRequests: b.SpecialRequests,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
