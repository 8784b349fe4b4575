package mailer

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// BookingConfirmation данные письма-подтверждения записи
type BookingConfirmation struct {
	To            string           // Email клиента
	ServiceName   string           // Название услуги
	ProviderName  string           // Имя провайдера
	Date          time.Time        // Дата записи
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время конца
	Price         float64          // Цена услуги
	AppointmentID int64            // ID записи
}
