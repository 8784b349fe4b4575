package paymentgateway

import "errors"

var (
	// ErrInvalidSignature возвращается при невалидной подписи вебхука
	ErrInvalidSignature = errors.New("paymentgateway: invalid webhook signature")

	// ErrUnsupportedEvent возвращается для событий, которые шлюз не обрабатывает
	ErrUnsupportedEvent = errors.New("paymentgateway: unsupported event type")

	// ErrInvalidPayload возвращается при некорректном теле события
	ErrInvalidPayload = errors.New("paymentgateway: invalid event payload")

	// ErrInternal возвращается при ошибках Stripe API
	ErrInternal = errors.New("paymentgateway: stripe api error")
)
