package update_time_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("update_time_slot: slot not found")

	// ErrAccessDenied возвращается, когда слот принадлежит другому провайдеру
	ErrAccessDenied = errors.New("update_time_slot: access denied")

	// ErrDuplicateSlot возвращается, когда идентичный слот уже существует
	ErrDuplicateSlot = errors.New("update_time_slot: identical slot already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_time_slot: internal error")
)
