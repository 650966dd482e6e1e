package get_available_slots

import (
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// generateTimeSlots генерирует упорядоченный список кандидатов на день.
// Начала слотов идут от открытия центра с шагом strideMinutes; шаг меньше
// длительности даёт пересекающиеся варианты старта. Кандидат, чей конец
// выходит за время закрытия, отбрасывается целиком. Пустое или отрицательное
// окно работы даёт пустой список, а не ошибку.
// Результат детерминирован: одинаковые входы всегда дают одинаковую
// последовательность по возрастанию времени начала.
func generateTimeSlots(
	workingHours catalogservice.DaySchedule,
	slotDuration int,
	strideMinutes int,
	requestDate time.Time,
	now time.Time,
	minBookingNoticeMinutes int,
) ([]types.TimeString, error) {
	// Дата в прошлом - слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Если центр закрыт в этот день
	if !workingHours.IsOpen || workingHours.OpenTime == nil || workingHours.CloseTime == nil {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromString(*workingHours.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(*workingHours.CloseTime)
	if err != nil {
		return nil, err
	}

	// Шаг 1: генерируем все кандидаты от открытия до закрытия с шагом stride
	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		slotEnd, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			// Конец слота вышел за границу суток - дальше кандидатов не будет
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)

		currentSlot, err = currentSlot.AddMinutes(strideMinutes)
		if err != nil {
			break
		}
	}

	// Шаг 2: если дата запроса не сегодня - возвращаем все кандидаты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: для сегодняшней даты отфильтровываем слоты, нарушающие
	// минимальное время до начала бронирования
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		return nil, err
	}

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// annotateSlots аннотирует кандидаты признаком доступности и ценой.
// Слот недоступен, если хотя бы одно удержание из индекса занятости реально
// пересекается с его интервалом. Аннотация - снимок на момент генерации,
// а не блокировка: авторитетное решение принимает Reserve при бронировании.
func annotateSlots(
	starts []types.TimeString,
	slotDuration int,
	pricePerHour float64,
	holds []*domain.SlotHold,
) []Slot {
	price := pricePerHour * float64(slotDuration) / 60.0

	result := make([]Slot, 0, len(starts))
	for _, start := range starts {
		end, err := start.AddMinutes(slotDuration)
		if err != nil {
			continue
		}

		result = append(result, Slot{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: slotDuration,
			Price:           price,
			IsAvailable:     !hasOverlappingHold(start, end, holds),
		})
	}

	return result
}

// hasOverlappingHold проверяет реальное пересечение интервала с удержаниями.
// Используются строгие неравенства: граничащие интервалы (конец одного равен
// началу другого) пересечением не считаются.
//
// Примеры:
// - Слот 09:00-10:30, удержание 08:30-10:00 → ЕСТЬ пересечение (09:00-10:00)
// - Слот 09:00-10:30, удержание 07:30-09:00 → НЕТ пересечения (граничат)
// - Слот 09:00-10:30, удержание 10:30-12:00 → НЕТ пересечения (граничат)
func hasOverlappingHold(start, end types.TimeString, holds []*domain.SlotHold) bool {
	for _, hold := range holds {
		if hold.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
