package create_blocked_slot

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	createBlockedSlot "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_blocked_slot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// CreateBlockedSlotRequest HTTP request model
type CreateBlockedSlotRequest struct {
	Date      string  `json:"date"`      // "2026-01-15"
	StartTime string  `json:"startTime"` // "12:00"
	EndTime   string  `json:"endTime"`   // "13:00"
	Reason    *string `json:"reason,omitempty"`
}

// BlockedSlotResponse HTTP response model
type BlockedSlotResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    *string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockedSlotRequest) ToUseCaseRequest(providerID int64) (*createBlockedSlot.Request, error) {
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

	return &createBlockedSlot.Request{
		ProviderID: providerID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Reason:     r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlockedSlot.Response) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Reason:    resp.Reason,
	}
}
