package update_center_config

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/config/models"
)

// UpdateConfigRequest HTTP request model
type UpdateConfigRequest struct {
	CourtID                 *string `json:"courtId,omitempty"` // nil - конфигурация всего центра
	SlotDurationMinutes     int     `json:"slotDurationMinutes"`
	SlotStrideMinutes       int     `json:"slotStrideMinutes"`
	AdvanceBookingDays      int     `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int     `json:"minBookingNoticeMinutes"`
	MaxPlayers              int     `json:"maxPlayers"`
}

// ConfigResponse HTTP response model
type ConfigResponse struct {
	ID                      int64   `json:"id"`
	CenterID                string  `json:"centerId"`
	CourtID                 *string `json:"courtId,omitempty"`
	SlotDurationMinutes     int     `json:"slotDurationMinutes"`
	SlotStrideMinutes       int     `json:"slotStrideMinutes"`
	AdvanceBookingDays      int     `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int     `json:"minBookingNoticeMinutes"`
	MaxPlayers              int     `json:"maxPlayers"`
	CreatedAt               string  `json:"createdAt"`
	UpdatedAt               string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(centerID, requestedBy string) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		RequestedBy:             requestedBy,
		CenterID:                centerID,
		CourtID:                 r.CourtID,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		SlotStrideMinutes:       r.SlotStrideMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		MaxPlayers:              r.MaxPlayers,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(c *domain.CenterSlotsConfig) *ConfigResponse {
	return &ConfigResponse{
		ID:                      c.ID,
		CenterID:                c.CenterID,
		CourtID:                 c.CourtID,
		SlotDurationMinutes:     c.SlotDurationMinutes,
		SlotStrideMinutes:       c.SlotStrideMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		MaxPlayers:              c.MaxPlayers,
		CreatedAt:               c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               c.UpdatedAt.Format(time.RFC3339),
	}
}
