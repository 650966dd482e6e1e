package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes     = 90
	DefaultSlotStrideMinutes       = 30
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
	DefaultMaxPlayers              = 4
)

// Business validation constants
const (
	MinSlotDurationMinutes = 30
	MaxSlotDurationMinutes = 240 // 4 hours
	MinSlotStrideMinutes   = 15
	MaxSlotStrideMinutes   = 120
	MinAdvanceBookingDays  = 0
	MaxAdvanceBookingDays  = 365 // 1 year
	MinBookingNotice       = 0
	MaxBookingNotice       = 10080 // 1 week
	MinPlayers             = 1
	MaxPlayersLimit        = 8

	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, при которых бронирование не занимает слот
// Используется при фильтрации и при подсчёте занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusPaid,
	StatusCompleted,
}
