package approve_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("approve_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда запись принадлежит другому провайдеру
	ErrAccessDenied = errors.New("approve_appointment: access denied")

	// ErrCannotApprove возвращается, когда запись не может быть подтверждена
	// (отклонена, завершена или оплата не прошла)
	ErrCannotApprove = errors.New("approve_appointment: appointment cannot be approved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_appointment: internal error")
)
