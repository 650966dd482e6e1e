package get_available_slots

import (
	"github.com/m04kA/PCB-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/PCB-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model временного слота
type SlotResponse struct {
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsAvailable     bool    `json:"isAvailable"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CourtID  string         `json:"courtId"`
	CenterID string         `json:"centerId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			IsAvailable:     s.IsAvailable,
		})
	}

	return &AvailableSlotsResponse{
		CourtID:  resp.CourtID,
		CenterID: resp.CenterID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
