package schedule

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotBooked возвращается при попытке удалить забронированный слот
	ErrSlotBooked = errors.New("slot is already booked")

	// ErrBlockedSlotNotFound возвращается, когда блокировка не найдена
	ErrBlockedSlotNotFound = errors.New("blocked slot not found")

	// ErrDuplicateWorkingHours возвращается, когда для дня недели уже есть расписание
	ErrDuplicateWorkingHours = errors.New("working hours for this day already exist")

	// ErrWorkingHoursNotFound возвращается, когда запись рабочих часов не найдена
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrAccessDenied возвращается, когда слот принадлежит другому провайдеру
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
