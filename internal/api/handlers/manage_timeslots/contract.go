package manage_timeslots

import (
	"context"

	"github.com/cazingue/BMT-ReservationService/internal/service/timeslots/models"
)

type TimeSlotsService interface {
	Create(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error)
	GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error)
	List(ctx context.Context, includeInactive bool) (*models.TimeSlotListResponse, error)
	ListLunch(ctx context.Context) (*models.TimeSlotListResponse, error)
	ListDinner(ctx context.Context) (*models.TimeSlotListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
