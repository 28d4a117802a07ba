package domain

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// TimeSlot is an entry of the bookable start-time catalog.
// Invariant: StartTime < EndTime.
type TimeSlot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
	IsLunch   bool
	IsDinner  bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotAvailability is a catalog entry annotated with bookability
// for a concrete date and party size.
type SlotAvailability struct {
	SlotID    int64
	StartTime types.TimeString
	EndTime   types.TimeString
	IsLunch   bool
	IsDinner  bool
	Available bool
}
