package create_blocked_slot

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// Request модель запроса на создание блокировки
type Request struct {
	ProviderID int64            // ID провайдера
	Date       time.Time        // Дата блокировки
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время конца
	Reason     *string          // Причина блокировки (опционально)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID        int64            // ID созданной блокировки
	Date      time.Time        // Дата
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	Reason    *string          // Причина
}
