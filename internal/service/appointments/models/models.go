package models

import (
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
)

// ProviderAppointmentsFilter фильтр списка записей провайдера
type ProviderAppointmentsFilter struct {
	ProviderID int64
	Date       *string // "2026-01-15", опционально
	Status     *string // pending | approved | rejected | paid | completed | failed
}

// AppointmentResponse запись на услугу
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	ClientID     int64   `json:"clientId"`
	ServiceID    int64   `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	TimeSlotID   int64   `json:"timeSlotId"`
	LocationID   *int64  `json:"locationId,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	BookedOn     string  `json:"bookedOn"`
}

// FromDomainAppointment конвертирует domain.Appointment в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           appt.ID,
		ClientID:     appt.ClientID,
		ServiceID:    appt.ProviderServiceID,
		ServiceName:  appt.ServiceName,
		ServicePrice: appt.ServicePrice,
		TimeSlotID:   appt.TimeSlotID,
		LocationID:   appt.LocationID,
		Date:         appt.Date.Format(domain.DateFormat),
		Status:       string(appt.Status),
		BookedOn:     appt.BookedOn.Format("2006-01-02 15:04:05"),
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(appts []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return result
}
