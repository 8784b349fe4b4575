package create_time_slot

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// Request модель запроса на создание слота
type Request struct {
	ProviderID int64            // ID провайдера
	Date       time.Time        // Дата слота (без времени)
	StartTime  types.TimeString // Время начала ("09:00")
	EndTime    types.TimeString // Время конца ("10:00")
}

// Response модель ответа с созданным слотом
type Response struct {
	ID        int64            // ID созданного слота
	Date      time.Time        // Дата слота
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	IsBooked  bool             // Флаг бронирования (всегда false для нового слота)
	CreatedAt time.Time        // Время создания
}
