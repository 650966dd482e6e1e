package models

// UpdateConfigRequest запрос на создание или обновление конфигурации слотов
type UpdateConfigRequest struct {
	RequestedBy string  // ID менеджера
	CenterID    string  // ID центра
	CourtID     *string // ID корта (nil - конфигурация всего центра)

	SlotDurationMinutes     int // Длительность слота в минутах
	SlotStrideMinutes       int // Шаг сетки слотов в минутах
	AdvanceBookingDays      int // Горизонт бронирования в днях (0 - без ограничения)
	MinBookingNoticeMinutes int // Минимальное время до начала бронирования
	MaxPlayers              int // Максимальное количество игроков
}

// GetConfigRequest запрос на чтение конфигурации слотов
type GetConfigRequest struct {
	CenterID string  // ID центра
	CourtID  *string // ID корта (nil - конфигурация всего центра с учётом иерархии)
}
