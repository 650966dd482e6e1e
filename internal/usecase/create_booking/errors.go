package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtInactive возвращается, когда корт выведен из эксплуатации
	ErrCourtInactive = errors.New("create_booking: court is not active")

	// ErrCenterNotFound возвращается, когда центр не найден в каталоге
	ErrCenterNotFound = errors.New("create_booking: center not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrCenterClosed возвращается, когда центр закрыт в указанную дату
	ErrCenterClosed = errors.New("create_booking: center is closed on this date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	// Вызывающая сторона может перечитать доступность и выбрать другой слот
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда интервал некорректен
	// (не совпадает с сеткой слотов или выходит за рабочие часы)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда бронирование нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrTooManyPlayers возвращается, когда количество игроков превышает лимит корта
	ErrTooManyPlayers = errors.New("create_booking: player count exceeds court limit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
