package approve_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("approve_reservation: reservation not found")

	// ErrNotPending возвращается, когда бронирование не в статусе pending
	ErrNotPending = errors.New("approve_reservation: only pending reservations can be approved")

	// ErrNoTableAvailable возвращается, когда нет свободного стола
	ErrNoTableAvailable = errors.New("approve_reservation: no available table for this reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_reservation: internal error")
)
