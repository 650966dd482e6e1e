package get_available_slots

import (
	"time"

	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID  string    // ID пользователя (для логирования, не влияет на результат)
	CourtID string    // ID корта
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов корта на дату
type Response struct {
	CourtID  string    // ID корта
	CenterID string    // ID центра
	Date     time.Time // Дата, на которую запрашивались слоты
	Slots    []Slot    // Список слотов (включая занятые, с признаком доступности)
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время окончания слота
	DurationMinutes int              // Длительность слота в минутах
	Price           float64          // Цена слота (серверный расчёт)
	IsAvailable     bool             // Свободен ли слот на момент генерации (снимок)
}
