package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusRejected  AppointmentStatus = "rejected"
	StatusPaid      AppointmentStatus = "paid"
	StatusCompleted AppointmentStatus = "completed"
	StatusFailed    AppointmentStatus = "failed"
)

// Appointment represents a client's appointment for a provider service
type Appointment struct {
	ID                int64
	ClientID          int64
	ProviderServiceID int64
	TimeSlotID        int64
	LocationID        *int64
	Date              time.Time
	Status            AppointmentStatus
	BookedOn          time.Time

	// Denormalized data for history and notifications
	ServiceName  string
	ServicePrice float64

	// ProviderID владелец услуги, заполняется из provider_services при чтении
	ProviderID int64
}

// IsValid returns true for a known appointment status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// IsActive returns true if the appointment occupies its time slot
// (blocks other slots from overlapping it)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending ||
		a.Status == StatusApproved ||
		a.Status == StatusPaid
}

// CanBeApproved returns true if the appointment can be approved
func (a *Appointment) CanBeApproved() bool {
	return a.Status == StatusPending
}

// CanBeRejected returns true if the appointment can be rejected
func (a *Appointment) CanBeRejected() bool {
	return a.Status == StatusPending
}

// IsApproved returns true if the appointment has already been approved
func (a *Appointment) IsApproved() bool {
	return a.Status == StatusApproved
}

// AppointmentFilter фильтр для получения записей провайдера
type AppointmentFilter struct {
	ProviderID int64              // Обязательный параметр
	Date       *time.Time         // Фильтр по дате (опционально)
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
}
