package models

import (
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
)

// Request модели

// SetWorkingHoursRequest запрос на добавление рабочих часов
type SetWorkingHoursRequest struct {
	ProviderID int64  `json:"providerId"`
	DayOfWeek  int    `json:"dayOfWeek"` // Monday=0 .. Sunday=6
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "17:00"
}

// Response модели

// WorkingHoursResponse рабочие часы на день недели
type WorkingHoursResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimeSlotResponse слот провайдера
type TimeSlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// BlockedSlotResponse блокировка времени
type BlockedSlotResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    *string `json:"reason,omitempty"`
}

// FromDomainWorkingHours конвертирует domain.WorkingHours в response
func FromDomainWorkingHours(wh *domain.WorkingHours) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ID:        wh.ID,
		DayOfWeek: wh.DayOfWeek,
		StartTime: wh.StartTime.String(),
		EndTime:   wh.EndTime.String(),
	}
}

// FromDomainWorkingHoursList конвертирует список рабочих часов
func FromDomainWorkingHoursList(hours []*domain.WorkingHours) []*WorkingHoursResponse {
	result := make([]*WorkingHoursResponse, len(hours))
	for i, wh := range hours {
		result[i] = FromDomainWorkingHours(wh)
	}
	return result
}

// FromDomainTimeSlot конвертирует domain.TimeSlot в response
func FromDomainTimeSlot(slot *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:        slot.ID,
		Date:      slot.Date.Format(domain.DateFormat),
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
		IsBooked:  slot.IsBooked,
	}
}

// FromDomainTimeSlotList конвертирует список слотов
func FromDomainTimeSlotList(slots []*domain.TimeSlot) []*TimeSlotResponse {
	result := make([]*TimeSlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = FromDomainTimeSlot(slot)
	}
	return result
}

// FromDomainBlockedSlot конвертирует domain.BlockedSlot в response
func FromDomainBlockedSlot(slot *domain.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:        slot.ID,
		Date:      slot.Date.Format(domain.DateFormat),
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
		Reason:    slot.Reason,
	}
}

// FromDomainBlockedSlotList конвертирует список блокировок
func FromDomainBlockedSlotList(slots []*domain.BlockedSlot) []*BlockedSlotResponse {
	result := make([]*BlockedSlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = FromDomainBlockedSlot(slot)
	}
	return result
}
