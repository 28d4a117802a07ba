package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	tableRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/table"
	"github.com/cazingue/BMT-ReservationService/internal/service/tables/models"
)

// Service сервис управления столами (админка)
type Service struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Create создает новый стол
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: creating table number=%d, capacity=%d", req.Number, req.Capacity)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	status := domain.TableAvailable
	if req.Status != "" {
		converted, err := models.ToDomainTableStatus(req.Status)
		if err != nil {
			s.logger.Warn("Create: invalid status=%s", req.Status)
			return nil, ErrInvalidStatus
		}
		status = converted
	}

	created, err := s.tableRepo.Create(ctx, &domain.Table{
		Number:      req.Number,
		Capacity:    req.Capacity,
		Status:      status,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateNumber) {
			s.logger.Warn("Create: table number=%d already exists", req.Number)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created table id=%d", created.ID)
	return models.FromDomainTable(created), nil
}

// GetByID получает стол по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TableResponse, error) {
	s.logger.Info("GetByID: fetching table id=%d", id)

	t, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("GetByID: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetByID: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTable(t), nil
}

// List получает все столы, отсортированные по номеру
func (s *Service) List(ctx context.Context) (*models.TableListResponse, error) {
	s.logger.Info("List: fetching all tables")

	tables, err := s.tableRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d tables", len(tables))
	return models.FromDomainTableList(tables), nil
}

// Update обновляет поля стола
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Update: updating table id=%d", id)

	params, err := toUpdateParams(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for table id=%d: %v", id, err)
		return nil, err
	}

	if err := s.tableRepo.Update(ctx, id, params); err != nil {
		switch {
		case errors.Is(err, tableRepo.ErrTableNotFound):
			s.logger.Warn("Update: table id=%d not found", id)
			return nil, ErrTableNotFound
		case errors.Is(err, tableRepo.ErrDuplicateNumber):
			s.logger.Warn("Update: table number already exists for table id=%d", id)
			return nil, ErrDuplicateNumber
		default:
			s.logger.Error("Update: repository error for table id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated table id=%d", id)
	return models.FromDomainTable(updated), nil
}

// UpdateStatus меняет операционный статус стола (занят, обслуживание и т.д.)
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateTableStatusRequest) error {
	s.logger.Info("UpdateStatus: updating table id=%d to status=%s", id, req.Status)

	status, err := models.ToDomainTableStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for table id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.tableRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("UpdateStatus: table id=%d not found", id)
			return ErrTableNotFound
		}
		s.logger.Error("UpdateStatus: repository error for table id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated table id=%d to status=%s", id, status)
	return nil
}

// Delete удаляет стол. Стол с активными бронированиями на сегодня или
// будущие даты удалить нельзя: сначала бронирования нужно отменить
// или перенести.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting table id=%d", id)

	if _, err := s.tableRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Delete: table id=%d not found", id)
			return ErrTableNotFound
		}
		s.logger.Error("Delete: repository error for table id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	count, err := s.reservationRepo.CountBlockingFromDate(ctx, id, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Delete: failed to count reservations for table id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: table id=%d has %d active future reservations", id, count)
		return ErrHasFutureReservations
	}

	if err := s.tableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Delete: table id=%d not found", id)
			return ErrTableNotFound
		}
		s.logger.Error("Delete: repository error for table id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted table id=%d", id)
	return nil
}

// Валидация

func validateCreateRequest(req *models.CreateTableRequest) error {
	if req.Number <= 0 {
		return fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}
	if req.Capacity < domain.MinTableCapacity || req.Capacity > domain.MaxTableCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinTableCapacity, domain.MaxTableCapacity)
	}
	return nil
}

func toUpdateParams(req *models.UpdateTableRequest) (tableRepo.UpdateParams, error) {
	params := tableRepo.UpdateParams{
		Number:      req.Number,
		Capacity:    req.Capacity,
		Description: req.Description,
	}

	if req.Number != nil && *req.Number <= 0 {
		return params, fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}

	if req.Capacity != nil {
		if *req.Capacity < domain.MinTableCapacity || *req.Capacity > domain.MaxTableCapacity {
			return params, fmt.Errorf("%w: capacity must be between %d and %d",
				ErrInvalidInput, domain.MinTableCapacity, domain.MaxTableCapacity)
		}
	}

	if req.Status != nil {
		status, err := models.ToDomainTableStatus(*req.Status)
		if err != nil {
			return params, ErrInvalidStatus
		}
		params.Status = &status
	}

	return params, nil
}
