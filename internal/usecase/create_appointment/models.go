package create_appointment

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID    int64  // ID клиента
	ClientEmail string // Email клиента для подтверждения
	ServiceID   int64  // ID услуги провайдера
	TimeSlotID  int64  // ID выбранного слота
	LocationID  *int64 // ID локации (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64            // ID созданной записи
	ServiceID  int64            // ID услуги
	TimeSlotID int64            // ID слота
	Date       time.Time        // Дата записи (дата слота)
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время конца
	Status     string           // Статус (pending)
	BookedOn   time.Time        // Время создания записи

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
}
