package domain

import "github.com/cazingue/BMT-ReservationService/pkg/types"

// Overlaps is the single interval-overlap test of the system. Every
// conflict decision (availability search, table assignment, update
// re-checks) goes through it.
//
// Both reservations occupy half-open windows [start, start+duration).
// Strict inequalities on both sides mean a window ending exactly when
// another starts is NOT a conflict:
//
//	12:00-14:00 vs 14:00-16:00 → no conflict (they touch)
//	12:00-14:00 vs 13:30-15:30 → conflict (12:00 < 15:30 && 13:30 < 14:00)
func Overlaps(aStart, bStart types.TimeString, durationMinutes int) bool {
	a := aStart.Minutes()
	b := bStart.Minutes()
	if a < 0 || b < 0 {
		return false
	}
	aEnd := a + durationMinutes
	bEnd := b + durationMinutes
	return a < bEnd && b < aEnd
}

// HasConflict reports whether any blocking reservation in the list
// occupies the given table during the [start, start+duration) window.
// Reservations on other tables and released reservations are ignored.
func HasConflict(tableID int64, start types.TimeString, durationMinutes int, reservations []*Reservation) bool {
	for _, res := range reservations {
		if !res.BlocksTable() {
			continue
		}
		if res.TableID == nil || *res.TableID != tableID {
			continue
		}
		if Overlaps(res.Time, start, durationMinutes) {
			return true
		}
	}
	return false
}
