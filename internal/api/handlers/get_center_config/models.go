package get_center_config

import (
	"github.com/m04kA/PCB-BookingService/internal/domain"
)

// ConfigResponse HTTP response model
type ConfigResponse struct {
	CenterID                string  `json:"centerId"`
	CourtID                 *string `json:"courtId,omitempty"`
	SlotDurationMinutes     int     `json:"slotDurationMinutes"`
	SlotStrideMinutes       int     `json:"slotStrideMinutes"`
	AdvanceBookingDays      int     `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int     `json:"minBookingNoticeMinutes"`
	MaxPlayers              int     `json:"maxPlayers"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(c *domain.CenterSlotsConfig) *ConfigResponse {
	return &ConfigResponse{
		CenterID:                c.CenterID,
		CourtID:                 c.CourtID,
		SlotDurationMinutes:     c.SlotDurationMinutes,
		SlotStrideMinutes:       c.SlotStrideMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		MaxPlayers:              c.MaxPlayers,
	}
}
