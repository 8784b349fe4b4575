package create_appointment

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	createAppointment "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID   int64  `json:"serviceId"`
	TimeSlotID  int64  `json:"timeSlotId"`
	LocationID  *int64 `json:"locationId,omitempty"`
	ClientEmail string `json:"clientEmail"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	ServiceID    int64   `json:"serviceId"`
	TimeSlotID   int64   `json:"timeSlotId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	BookedOn     string  `json:"bookedOn"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) *createAppointment.Request {
	return &createAppointment.Request{
		ClientID:    clientID,
		ClientEmail: r.ClientEmail,
		ServiceID:   r.ServiceID,
		TimeSlotID:  r.TimeSlotID,
		LocationID:  r.LocationID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		ServiceID:    resp.ServiceID,
		TimeSlotID:   resp.TimeSlotID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		BookedOn:     resp.BookedOn.Format(time.RFC3339),
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
	}
}
