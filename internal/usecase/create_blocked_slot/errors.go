package create_blocked_slot

import "errors"

var (
	// ErrDuplicateSlot возвращается, когда идентичная блокировка уже существует
	ErrDuplicateSlot = errors.New("create_blocked_slot: identical blocked slot already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_blocked_slot: internal error")
)
