package approve_reservation

import (
	"context"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetBlockingByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	AssignTable(ctx context.Context, id int64, tableID int64) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListByMinCapacity(ctx context.Context, partySize int) ([]*domain.Table, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
