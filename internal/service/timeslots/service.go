package timeslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	timeslotRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/timeslot"
	"github.com/cazingue/BMT-ReservationService/internal/service/timeslots/models"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// Service сервис управления каталогом временных слотов (админка)
type Service struct {
	slotRepo TimeSlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create создает новый слот каталога
func (s *Service) Create(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Create: creating time slot start=%s, end=%s", req.StartTime, req.EndTime)

	start, end, err := parseSlotTimes(req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if !req.IsLunch && !req.IsDinner {
		s.logger.Warn("Create: slot must belong to lunch or dinner service")
		return nil, fmt.Errorf("%w: slot must belong to lunch or dinner service", ErrInvalidInput)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := s.slotRepo.Create(ctx, &domain.TimeSlot{
		StartTime: start,
		EndTime:   end,
		IsLunch:   req.IsLunch,
		IsDinner:  req.IsDinner,
		IsActive:  active,
	})
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrDuplicateSlot) {
			s.logger.Warn("Create: slot with start=%s already exists", req.StartTime)
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created time slot id=%d", created.ID)
	return models.FromDomainTimeSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error) {
	s.logger.Info("GetByID: fetching time slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: time slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for time slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeSlot(slot), nil
}

// List получает каталог слотов. includeInactive добавляет отключённые слоты.
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.TimeSlotListResponse, error) {
	s.logger.Info("List: fetching time slots, includeInactive=%t", includeInactive)

	var slots []*domain.TimeSlot
	var err error
	if includeInactive {
		slots, err = s.slotRepo.ListAll(ctx)
	} else {
		slots, err = s.slotRepo.ListActive(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d time slots", len(slots))
	return models.FromDomainTimeSlotList(slots), nil
}

// ListLunch получает активные обеденные слоты
func (s *Service) ListLunch(ctx context.Context) (*models.TimeSlotListResponse, error) {
	s.logger.Info("ListLunch: fetching lunch time slots")

	slots, err := s.slotRepo.ListLunch(ctx)
	if err != nil {
		s.logger.Error("ListLunch: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLunch - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeSlotList(slots), nil
}

// ListDinner получает активные ужинные слоты
func (s *Service) ListDinner(ctx context.Context) (*models.TimeSlotListResponse, error) {
	s.logger.Info("ListDinner: fetching dinner time slots")

	slots, err := s.slotRepo.ListDinner(ctx)
	if err != nil {
		s.logger.Error("ListDinner: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDinner - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeSlotList(slots), nil
}

// Update обновляет слот каталога
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Update: updating time slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: time slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for time slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			s.logger.Warn("Update: invalid start time %s", *req.StartTime)
			return nil, fmt.Errorf("%w: invalid start time format", ErrInvalidInput)
		}
		slot.StartTime = start
	}
	if req.EndTime != nil {
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			s.logger.Warn("Update: invalid end time %s", *req.EndTime)
			return nil, fmt.Errorf("%w: invalid end time format", ErrInvalidInput)
		}
		slot.EndTime = end
	}
	if req.IsLunch != nil {
		slot.IsLunch = *req.IsLunch
	}
	if req.IsDinner != nil {
		slot.IsDinner = *req.IsDinner
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	if !slot.StartTime.IsBefore(slot.EndTime) {
		s.logger.Warn("Update: start time %s is not before end time %s", slot.StartTime, slot.EndTime)
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if !slot.IsLunch && !slot.IsDinner {
		s.logger.Warn("Update: slot must belong to lunch or dinner service")
		return nil, fmt.Errorf("%w: slot must belong to lunch or dinner service", ErrInvalidInput)
	}

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		switch {
		case errors.Is(err, timeslotRepo.ErrSlotNotFound):
			s.logger.Warn("Update: time slot id=%d not found", id)
			return nil, ErrSlotNotFound
		case errors.Is(err, timeslotRepo.ErrDuplicateSlot):
			s.logger.Warn("Update: slot with start=%s already exists", slot.StartTime)
			return nil, ErrDuplicateSlot
		default:
			s.logger.Error("Update: repository error for time slot id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated time slot id=%d", id)
	return models.FromDomainTimeSlot(slot), nil
}

// Delete удаляет слот из каталога
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting time slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: time slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for time slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted time slot id=%d", id)
	return nil
}

// parseSlotTimes парсит и валидирует пару времен слота
func parseSlotTimes(startStr, endStr string) (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid start time format", ErrInvalidInput)
	}

	end, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid end time format", ErrInvalidInput)
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	return start, end, nil
}
