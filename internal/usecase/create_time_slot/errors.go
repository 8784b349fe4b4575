package create_time_slot

import "errors"

var (
	// ErrDuplicateSlot возвращается, когда идентичный слот уже существует
	ErrDuplicateSlot = errors.New("create_time_slot: identical slot already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_time_slot: internal error")
)
