package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("service.bookings: booking not found")

	// ErrCenterNotFound возвращается, когда центр бронирования не найден в каталоге
	ErrCenterNotFound = errors.New("service.bookings: center not found")

	// ErrAccessDenied возвращается при попытке доступа к чужому бронированию
	// или управленческой операции не от менеджера центра
	ErrAccessDenied = errors.New("service.bookings: access denied")

	// ErrInvalidStatusTransition возвращается при недопустимом переходе статуса
	ErrInvalidStatusTransition = errors.New("service.bookings: invalid status transition")

	// ErrCannotCancel возвращается, когда бронирование в терминальном статусе
	// и отменить его нельзя
	ErrCannotCancel = errors.New("service.bookings: booking cannot be cancelled")

	// ErrPaymentNotAllowed возвращается, когда оплату нельзя зафиксировать
	// в текущем статусе бронирования
	ErrPaymentNotAllowed = errors.New("service.bookings: payment is not allowed in current status")

	// ErrNoShowTooEarly возвращается при попытке отметить неявку до окончания слота
	ErrNoShowTooEarly = errors.New("service.bookings: no_show can only be set after slot end")

	// ErrConsistencyViolation возвращается, когда слот бронирования удерживается
	// другим бронированием - рассинхронизация индекса занятости и бронирований
	ErrConsistencyViolation = errors.New("service.bookings: availability index is inconsistent with booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.bookings: internal error")
)
