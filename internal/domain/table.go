package domain

import "time"

// TableStatus is an operational flag set by staff. It is independent of
// bookings: a table can be "available" and still have future reservations.
type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableOccupied    TableStatus = "occupied"
	TableReserved    TableStatus = "reserved"
	TableMaintenance TableStatus = "maintenance"
)

// Table represents a physical table in the dining room
type Table struct {
	ID          int64
	Number      int
	Capacity    int
	Status      TableStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanSeat returns true if the table has enough seats for the party.
func (t *Table) CanSeat(partySize int) bool {
	return t.Capacity >= partySize
}

// ValidTableStatus reports whether s is one of the known statuses.
func ValidTableStatus(s TableStatus) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableMaintenance:
		return true
	}
	return false
}
