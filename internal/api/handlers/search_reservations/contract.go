package search_reservations

import (
	"context"

	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	Search(ctx context.Context, req *models.SearchReservationsRequest) (*models.ReservationListResponse, error)
	GetToday(ctx context.Context) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
