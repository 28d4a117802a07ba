package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом или нулевая
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в указанный день
	ErrRestaurantClosed = errors.New("create_reservation: restaurant is closed on this date")

	// ErrDinnerNotAvailable возвращается при попытке забронировать ужин не в четверг
	ErrDinnerNotAvailable = errors.New("create_reservation: dinner service is only available on Thursday")

	// ErrOutsideBookingWindow возвращается, когда время вне окна бронирования
	ErrOutsideBookingWindow = errors.New("create_reservation: outside the advance booking window")

	// ErrSlotUnavailable возвращается, когда выбранный слот недоступен
	ErrSlotUnavailable = errors.New("create_reservation: time slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
