package availability

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// SlotRequest кандидат на создание или редактирование слота
type SlotRequest struct {
	ProviderID int64            // ID провайдера
	Date       time.Time        // Дата слота (без времени)
	StartTime  types.TimeString // Время начала ("09:00")
	EndTime    types.TimeString // Время конца ("10:00"), строго позже начала

	// ExcludeSlotID исключает слот с этим ID из поиска конфликтов
	// (используется при редактировании слота против самого себя)
	ExcludeSlotID *int64
}
