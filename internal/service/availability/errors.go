package availability

import "errors"

// Каждая причина отказа - отдельная sentinel-ошибка, чтобы вызывающий
// слой мог показать точное сообщение (errors.Is)
var (
	// ErrAppointmentOverlap возвращается, когда интервал пересекается со слотом
	// активной записи (pending/approved/paid) на эту дату
	ErrAppointmentOverlap = errors.New("availability: slot overlaps an existing appointment")

	// ErrBlockedOverlap возвращается, когда интервал пересекается с блокировкой
	ErrBlockedOverlap = errors.New("availability: slot overlaps a blocked period")

	// ErrPastDate возвращается, когда дата слота строго раньше сегодняшней
	ErrPastDate = errors.New("availability: slot date is in the past")

	// ErrNoWorkingHours возвращается, когда на день недели не заданы рабочие часы
	ErrNoWorkingHours = errors.New("availability: no working hours defined for this day")

	// ErrTimeOutOfRange возвращается, когда интервал выходит за рабочие часы
	ErrTimeOutOfRange = errors.New("availability: slot is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
