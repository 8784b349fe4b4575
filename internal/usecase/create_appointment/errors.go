package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_appointment: slot not found")

	// ErrSlotMismatch возвращается, когда слот принадлежит другому провайдеру
	ErrSlotMismatch = errors.New("create_appointment: slot does not belong to service provider")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrNotificationFailed возвращается, когда письмо-подтверждение не отправлено
	ErrNotificationFailed = errors.New("create_appointment: failed to send confirmation email")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
