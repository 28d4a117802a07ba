package manage_reservation

import (
	"context"

	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error)
	AdminUpdate(ctx context.Context, id int64, req *models.AdminUpdateReservationRequest) (*models.ReservationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
