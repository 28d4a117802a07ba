package domain

// Default reservation policy values. The effective values come from
// configuration; these mirror the restaurant's standing policy.
const (
	DefaultServiceDurationMinutes  = 120 // a party occupies its table for 2 hours
	DefaultMinAdvanceHours         = 1
	DefaultMaxAdvanceHours         = 720 // 30 days
	DefaultCancellationCutoffHours = 2
)

// Business validation constants
const (
	MinPartySize          = 1
	MaxPartySize          = 20
	MinTableCapacity      = 1
	MaxTableCapacity      = 20
	MinCustomerNameLength = 2
	MaxCommentsLength     = 500
)

// DinnerServiceStartHour separates the lunch and dinner services:
// any start time from 15:00 onwards belongs to the dinner service.
const DinnerServiceStartHour = 15

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses список статусов, при которых бронирование занимает стол.
// Используется в запросах конфликтов и при проверке удаления стола.
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// ReleasedStatuses список статусов, при которых стол освобождён
var ReleasedStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}
