package paymentgateway

// CheckoutParams параметры создания платежной сессии
type CheckoutParams struct {
	AppointmentID int64   // ID оплачиваемой записи
	ServiceName   string  // Название услуги для строки заказа
	Price         float64 // Цена услуги в основной валюте
	Currency      string  // Валюта ISO 4217, по умолчанию "usd"
	ClientEmail   string  // Email клиента (опционально)
}

// CheckoutSession созданная платежная сессия
type CheckoutSession struct {
	ID  string // ID сессии Stripe
	URL string // URL для редиректа клиента на оплату
}

// PaymentEvent результат разбора вебхука платежного шлюза
type PaymentEvent struct {
	AppointmentID int64  // ID записи из метаданных сессии
	Paid          bool   // true для успешной оплаты
	SessionID     string // ID сессии Stripe
}
