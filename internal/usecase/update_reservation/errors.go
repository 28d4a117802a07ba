package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrForbiddenTransition возвращается, когда бронирование в финальном статусе
	ErrForbiddenTransition = errors.New("update_reservation: reservation can no longer be modified")

	// ErrTooLateToModify возвращается при нарушении окна модификации
	ErrTooLateToModify = errors.New("update_reservation: too late to modify this reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInvalidDate возвращается, когда новая дата в прошлом
	ErrInvalidDate = errors.New("update_reservation: invalid reservation date")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в новую дату
	ErrRestaurantClosed = errors.New("update_reservation: restaurant is closed on this date")

	// ErrDinnerNotAvailable возвращается при переносе ужина не на четверг
	ErrDinnerNotAvailable = errors.New("update_reservation: dinner service is only available on Thursday")

	// ErrOutsideBookingWindow возвращается, когда новое время вне окна бронирования
	ErrOutsideBookingWindow = errors.New("update_reservation: outside the advance booking window")

	// ErrSlotUnavailable возвращается, когда новый слот недоступен
	ErrSlotUnavailable = errors.New("update_reservation: time slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
