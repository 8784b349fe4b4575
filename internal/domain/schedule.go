package domain

import (
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// WorkingHours represents a provider's recurring weekly availability
// template, one row per weekday (Monday=0 .. Sunday=6)
type WorkingHours struct {
	ID         int64
	ProviderID int64
	DayOfWeek  int
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// Contains returns true if the [start, end] interval lies fully inside
// the working hours window (boundary equality is allowed)
func (w *WorkingHours) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// TimeSlot represents a provider-defined bookable time interval on a
// specific date
type TimeSlot struct {
	ID         int64
	ProviderID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	IsBooked   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BlockedSlot represents a period a provider marked unavailable
// ProviderID == nil означает общий блок, не привязанный к провайдеру
type BlockedSlot struct {
	ID         int64
	ProviderID *int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Reason     *string
}

// IsGeneral returns true if the block is not tied to a specific provider
func (b *BlockedSlot) IsGeneral() bool {
	return b.ProviderID == nil
}

// WeekdayIndex возвращает индекс дня недели в диапазоне Monday=0 .. Sunday=6
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
