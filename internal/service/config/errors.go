package config

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация не найдена
	ErrConfigNotFound = errors.New("service.config: config not found")

	// ErrCenterNotFound возвращается, когда центр не найден в каталоге
	ErrCenterNotFound = errors.New("service.config: center not found")

	// ErrAccessDenied возвращается, когда пользователь не менеджер центра
	ErrAccessDenied = errors.New("service.config: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.config: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.config: internal error")
)
