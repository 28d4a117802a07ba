package domain

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// Operating policy: lunch service Monday through Friday, dinner service
// on Thursday only, closed on weekends. These are pure predicates; they
// never error and callers translate false into validation messages.

// IsOperatingDay returns false for Saturday and Sunday.
func IsOperatingDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsDinnerDay returns true only for Thursday.
func IsDinnerDay(date time.Time) bool {
	return date.Weekday() == time.Thursday
}

// IsDinnerTime reports whether the start time falls in the dinner
// service (15:00 and later).
func IsDinnerTime(at types.TimeString) bool {
	m := at.Minutes()
	return m >= DinnerServiceStartHour*60
}

// HoursUntil returns the (possibly negative, fractional) number of hours
// from now until the given date and wall-clock time.
func HoursUntil(date time.Time, at types.TimeString, now time.Time) float64 {
	return at.At(date).Sub(now).Hours()
}

// IsWithinBookingWindow checks that the requested instant is between
// minHours and maxHours ahead of now.
func IsWithinBookingWindow(date time.Time, at types.TimeString, now time.Time, minHours, maxHours int) bool {
	delta := HoursUntil(date, at, now)
	return delta >= float64(minHours) && delta <= float64(maxHours)
}

// IsBeforeCutoff checks that the reservation instant is still at least
// cutoffHours away, i.e. the customer may modify or cancel it.
func IsBeforeCutoff(date time.Time, at types.TimeString, now time.Time, cutoffHours int) bool {
	return HoursUntil(date, at, now) >= float64(cutoffHours)
}

// IsSameDay reports whether the two instants fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast reports whether date is before today (time of day ignored).
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
