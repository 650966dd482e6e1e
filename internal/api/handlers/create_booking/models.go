package create_booking

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	createBooking "github.com/m04kA/PCB-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID         string   `json:"courtId"`
	BookingDate     string   `json:"bookingDate"` // "2026-09-15"
	StartTime       string   `json:"startTime"`   // "09:00"
	EndTime         string   `json:"endTime"`     // "10:30"
	PlayerCount     int      `json:"playerCount"`
	Price           *float64 `json:"price,omitempty"` // Цена, показанная клиенту (подсказка)
	SpecialRequests *string  `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"userId"`
	CourtID          string  `json:"courtId"`
	CenterID         string  `json:"centerId"`
	BookingDate      string  `json:"bookingDate"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	PlayerCount      int     `json:"playerCount"`
	BasePricePerHour float64 `json:"basePricePerHour"`
	TotalPrice       float64 `json:"totalPrice"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"paymentStatus"`
	SpecialRequests  *string `json:"specialRequests,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string, idempotencyKey *string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и окончания
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		CourtID:         r.CourtID,
		Date:            bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
		PlayerCount:     r.PlayerCount,
		RequestedPrice:  r.Price,
		SpecialRequests: r.SpecialRequests,
		IdempotencyKey:  idempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		CourtID:          resp.CourtID,
		CenterID:         resp.CenterID,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		PlayerCount:      resp.PlayerCount,
		BasePricePerHour: resp.BasePricePerHour,
		TotalPrice:       resp.TotalPrice,
		Status:           resp.Status,
		PaymentStatus:    resp.PaymentStatus,
		SpecialRequests:  resp.SpecialRequests,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
