package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Day-of-week bounds (Monday=0 .. Sunday=6)
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// ActiveStatuses список статусов, при которых запись занимает свой слот
// Используется при поиске пересечений в проверках доступности
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusPaid,
}

// InactiveStatuses список статусов, не блокирующих слот
var InactiveStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCompleted,
	StatusFailed,
}
