package timeslots

import (
	"context"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория каталога слотов
type TimeSlotRepository interface {
	Create(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	ListAll(ctx context.Context) ([]*domain.TimeSlot, error)
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
	ListLunch(ctx context.Context) ([]*domain.TimeSlot, error)
	ListDinner(ctx context.Context) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, s *domain.TimeSlot) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
