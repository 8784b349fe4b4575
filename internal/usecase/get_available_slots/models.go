package get_available_slots

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// Request модель запроса свободных слотов по услуге и дате
type Request struct {
	ServiceID int64     // ID услуги провайдера
	Date      time.Time // Интересующая дата
}

// Slot свободный слот
type Slot struct {
	ID        int64            // ID слота
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
}

// Response модель ответа со свободными слотами провайдера на дату
type Response struct {
	ServiceID  int64     // ID услуги
	ProviderID int64     // ID провайдера услуги
	Date       time.Time // Дата
	Slots      []Slot    // Свободные слоты, отсортированные по времени начала
}
