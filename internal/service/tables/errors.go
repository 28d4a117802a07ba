package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrDuplicateNumber возвращается, когда номер стола уже занят
	ErrDuplicateNumber = errors.New("table number already exists")

	// ErrHasFutureReservations возвращается при попытке удалить стол
	// с активными бронированиями на сегодня или будущие даты
	ErrHasFutureReservations = errors.New("table has active future reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatus возвращается при недопустимом статусе стола
	ErrInvalidStatus = errors.New("invalid table status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
