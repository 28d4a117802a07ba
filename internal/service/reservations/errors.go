package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrTooLateToCancel возвращается при нарушении окна отмены
	ErrTooLateToCancel = errors.New("too late to cancel this reservation")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrForbiddenTransition возвращается при попытке изменить бронирование
	// в терминальном статусе или выполнить недопустимый переход статуса
	ErrForbiddenTransition = errors.New("forbidden reservation transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
