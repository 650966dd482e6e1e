package domain

import (
	"time"

	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// TimeSlot represents a bookable time interval of a court on a date
// Слоты не хранятся в БД - они вычисляются генератором по рабочим часам центра,
// а признак доступности снимается с индекса занятости на момент генерации
type TimeSlot struct {
	CourtID     string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Price       float64
	IsAvailable bool
}

// SlotHold represents a claimed (court, date, interval) in the availability index
// Отсутствие записи означает, что интервал свободен
type SlotHold struct {
	CourtID   string
	SlotDate  time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	BookingID string
	CreatedAt time.Time
}

// Overlaps returns true if the hold interval really intersects [start, end)
// Граничащие интервалы (конец одного равен началу другого) пересечением не считаются
func (h *SlotHold) Overlaps(start, end types.TimeString) bool {
	return h.StartTime.IsBefore(end) && h.EndTime.IsAfter(start)
}
