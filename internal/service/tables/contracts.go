package tables

import (
	"context"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	tableRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/table"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	ListAll(ctx context.Context) ([]*domain.Table, error)
	Update(ctx context.Context, id int64, params tableRepo.UpdateParams) error
	UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований.
// Используется для проверки будущих бронирований перед удалением стола.
type ReservationRepository interface {
	CountBlockingFromDate(ctx context.Context, tableID int64, from time.Time) (int, error)
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
