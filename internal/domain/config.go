package domain

import "time"

// CenterSlotsConfig represents the slot configuration of a padel center
// Supports hierarchical configuration:
// 1. Court-specific (center_id, court_id)
// 2. Center-wide (center_id, NULL)
type CenterSlotsConfig struct {
	ID                      int64
	CenterID                string
	CourtID                 *string // NULL = config for all courts of the center
	SlotDurationMinutes     int
	SlotStrideMinutes       int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	MaxPlayers              int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsCenterWide returns true if this configuration applies to every court of the center
func (c *CenterSlotsConfig) IsCenterWide() bool {
	return c.CourtID == nil
}

// IsCourtSpecific returns true if this configuration is for a single court
func (c *CenterSlotsConfig) IsCourtSpecific() bool {
	return c.CourtID != nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *CenterSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultSlotsConfig возвращает конфигурацию с дефолтными значениями
func DefaultSlotsConfig() *CenterSlotsConfig {
	return &CenterSlotsConfig{
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		SlotStrideMinutes:       DefaultSlotStrideMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		MaxPlayers:              DefaultMaxPlayers,
	}
}
