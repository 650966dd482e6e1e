package get_user_bookings

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
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

// GroupedBookingsResponse HTTP response model для сгруппированного списка
type GroupedBookingsResponse struct {
	Upcoming  []*BookingResponse `json:"upcoming"`
	Past      []*BookingResponse `json:"past"`
	Cancelled []*BookingResponse `json:"cancelled"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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
	}
}

// FromDomainList конвертирует список доменных моделей
func FromDomainList(list []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, FromDomain(b))
	}
	return result
}

// FromGrouped конвертирует сгруппированные бронирования в HTTP response
func FromGrouped(grouped *models.GroupedBookings) *GroupedBookingsResponse {
	return &GroupedBookingsResponse{
		Upcoming:  FromDomainList(grouped.Upcoming),
		Past:      FromDomainList(grouped.Past),
		Cancelled: FromDomainList(grouped.Cancelled),
	}
}
