package workinghours

import "errors"

var (
	// ErrWorkingHoursNotFound возвращается, когда для дня недели нет расписания
	ErrWorkingHoursNotFound = errors.New("workinghours.repository: working hours not found")

	// ErrDuplicateWorkingHours возвращается при попытке создать вторую запись
	// для пары (provider_id, day_of_week)
	ErrDuplicateWorkingHours = errors.New("workinghours.repository: duplicate working hours for day")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")
)
