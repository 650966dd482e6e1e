package availability

import "errors"

var (
	// ErrSlotTaken возвращается, когда интервал уже удержан другим бронированием
	ErrSlotTaken = errors.New("availability.repository: slot already taken")

	// ErrHolderMismatch возвращается при попытке освободить слот, удержанный другим бронированием
	// Такое состояние означает нарушение инварианта эксклюзивности и должно расследоваться
	ErrHolderMismatch = errors.New("availability.repository: slot held by another booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
