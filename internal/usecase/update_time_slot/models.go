package update_time_slot

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// Request модель запроса на редактирование слота
type Request struct {
	SlotID     int64            // ID редактируемого слота
	ProviderID int64            // ID провайдера (владельца)
	Date       time.Time        // Новая дата
	StartTime  types.TimeString // Новое время начала
	EndTime    types.TimeString // Новое время конца
}

// Response модель ответа с обновленным слотом
type Response struct {
	ID        int64            // ID слота
	Date      time.Time        // Дата слота
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	IsBooked  bool             // Флаг бронирования
	UpdatedAt time.Time        // Время обновления
}
