package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/PCB-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		// "24:00" валидное время окончания - конец дня
		if req.EndTime != types.TimeString("24:00") {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.PlayerCount < domain.MinPlayers {
		return fmt.Errorf("%w: playerCount must be at least %d", ErrInvalidInput, domain.MinPlayers)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := nowOnly.AddDate(0, 0, advanceBookingDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateSlotWindow проверяет, что запрошенный интервал совпадает с сеткой слотов:
// длительность равна конфигурационной, начало выровнено по шагу от открытия,
// интервал целиком внутри рабочих часов центра
func validateSlotWindow(
	start, end types.TimeString,
	workingHours catalogservice.DaySchedule,
	slotDuration int,
	strideMinutes int,
) error {
	if !workingHours.IsOpen || workingHours.OpenTime == nil || workingHours.CloseTime == nil {
		return ErrCenterClosed
	}

	openTime, err := types.NewTimeStringFromString(*workingHours.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: invalid center open time: %v", ErrInternal, err)
	}

	closeTime, err := types.NewTimeStringFromString(*workingHours.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid center close time: %v", ErrInternal, err)
	}

	if start.IsBefore(openTime) || end.IsAfter(closeTime) {
		return fmt.Errorf("%w: slot is outside working hours %s-%s", ErrInvalidTimeSlot, openTime, closeTime)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	endMin := 24 * 60
	if end != types.TimeString("24:00") {
		endMin, err = end.Minutes()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if endMin-startMin != slotDuration {
		return fmt.Errorf("%w: slot duration must be %d minutes", ErrInvalidTimeSlot, slotDuration)
	}

	openMin, err := openTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid center open time: %v", ErrInternal, err)
	}

	if strideMinutes > 0 && (startMin-openMin)%strideMinutes != 0 {
		return fmt.Errorf("%w: slot start is not aligned to %d-minute grid", ErrInvalidTimeSlot, strideMinutes)
	}

	return nil
}

// validateNotice проверяет минимальное время до начала бронирования.
// Ограничение применяется только для бронирований на сегодня
func validateNotice(start types.TimeString, requestDate time.Time, now time.Time, minNoticeMinutes int) error {
	y1, m1, d1 := requestDate.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return nil
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(minNoticeMinutes)
	if err != nil {
		// Окно уведомления вышло за границу суток - сегодня бронировать уже нельзя
		return ErrTooLateToBook
	}

	if start.IsBefore(minAllowed) {
		return fmt.Errorf("%w: booking requires at least %d minutes notice", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}
