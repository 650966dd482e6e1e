package catalogservice

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("catalogservice: court not found")

	// ErrCenterNotFound возвращается, когда центр не найден в каталоге
	ErrCenterNotFound = errors.New("catalogservice: center not found")

	// ErrInvalidResponse возвращается при некорректном ответе CatalogService
	ErrInvalidResponse = errors.New("catalogservice: invalid response")

	// ErrInternal возвращается при сетевых и прочих внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice: internal error")
)
