package create_time_slot

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	createTimeSlot "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_time_slot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// CreateTimeSlotRequest HTTP request model
type CreateTimeSlotRequest struct {
	Date      string `json:"date"`      // "2026-01-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// TimeSlotResponse HTTP response model
type TimeSlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTimeSlotRequest) ToUseCaseRequest(providerID int64) (*createTimeSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createTimeSlot.Request{
		ProviderID: providerID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTimeSlot.Response) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		IsBooked:  resp.IsBooked,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
