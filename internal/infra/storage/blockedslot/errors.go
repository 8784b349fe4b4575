package blockedslot

import "errors"

var (
	// ErrBlockedSlotNotFound возвращается, когда блокировка не найдена
	ErrBlockedSlotNotFound = errors.New("blockedslot.repository: blocked slot not found")

	// ErrDuplicateSlot возвращается при нарушении уникальности
	// (provider_id, date, start_time, end_time)
	ErrDuplicateSlot = errors.New("blockedslot.repository: duplicate blocked slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockedslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockedslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockedslot.repository: failed to scan row")
)
