package domain

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time
	Time          types.TimeString
	PartySize     int
	Comments      string
	Status        ReservationStatus

	// ConfirmationCode is the customer's only credential to the reservation
	ConfirmationCode string

	TableID          *int64
	RequiresApproval bool

	// Denormalized table data for read paths (set when TableID is not nil)
	TableNumber   *int
	TableCapacity *int

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the reservation reached a final state
// and can no longer be edited, cancelled or approved.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled ||
		r.Status == StatusCompleted ||
		r.Status == StatusNoShow
}

// BlocksTable returns true if the reservation occupies its table for
// conflict purposes. Cancelled and no-show reservations release the table.
func (r *Reservation) BlocksTable() bool {
	return r.Status != StatusCancelled && r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeUpdated returns true if the reservation can still be edited
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// StartsAt anchors the reservation time onto its date.
func (r *Reservation) StartsAt() time.Time {
	return r.Time.At(r.Date)
}

// ReservationFilter фильтр для поиска бронирований (админка)
type ReservationFilter struct {
	Date          *time.Time         // Конкретная дата (опционально)
	Status        *ReservationStatus // Фильтр по статусу (опционально)
	CustomerName  *string            // Подстрока имени клиента (опционально)
	CustomerEmail *string            // Подстрока email клиента (опционально)
}

// ValidReservationStatus reports whether s is one of the known statuses.
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}
