package manage_tables

import (
	"context"

	"github.com/cazingue/BMT-ReservationService/internal/service/tables/models"
)

type TablesService interface {
	Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error)
	GetByID(ctx context.Context, id int64) (*models.TableResponse, error)
	List(ctx context.Context) (*models.TableListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateTableStatusRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
