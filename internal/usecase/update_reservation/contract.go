package update_reservation

import (
	"context"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetBlockingByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	Update(ctx context.Context, id int64, params reservationRepo.UpdateParams) error
	ResetToPending(ctx context.Context, id int64) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListByMinCapacity(ctx context.Context, partySize int) ([]*domain.Table, error)
}

// TimeSlotRepository интерфейс репозитория каталога слотов
type TimeSlotRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
