package get_available_slots

import (
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	getAvailableSlots "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID  int64          `json:"serviceId"`
	ProviderID int64          `json:"providerId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		ServiceID:  resp.ServiceID,
		ProviderID: resp.ProviderID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
