package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// Service сервис для работы с бронированиями: чтение, отмена и
// административные операции без оркестрации доступности
type Service struct {
	reservationRepo ReservationRepository
	policy          domain.ReservationPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	policy domain.ReservationPolicy,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID (админка)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetByCode получает бронирование по коду подтверждения.
// Код - единственный ключ клиента к своему бронированию.
func (s *Service) GetByCode(ctx context.Context, code string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByCode: fetching reservation code=%s", code)

	res, err := s.reservationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByCode: reservation code=%s not found", code)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// Search получает бронирования с фильтрацией (админка)
func (s *Service) Search(ctx context.Context, req *models.SearchReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("Search: filters date=%v, status=%v, name=%v, email=%v",
		req.Date, req.Status, req.CustomerName, req.CustomerEmail)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Search: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// GetToday получает бронирования на сегодня (админка)
func (s *Service) GetToday(ctx context.Context) (*models.ReservationListResponse, error) {
	today := s.timeProvider.Now()
	s.logger.Info("GetToday: fetching reservations for %s", today.Format(domain.DateFormat))

	reservations, err := s.reservationRepo.GetByDate(ctx, today)
	if err != nil {
		s.logger.Error("GetToday: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetToday - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование клиента по коду подтверждения.
// Отмена освобождает назначенный стол и проставляет cancelled_at.
func (s *Service) Cancel(ctx context.Context, code string) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation code=%s", code)

	res, err := s.reservationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation code=%s not found", code)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Отменять можно только pending и confirmed
	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", res.ID, res.Status)
		return nil, ErrCannotCancel
	}

	// Окно отмены считается от времени начала бронирования
	now := s.timeProvider.Now()
	if !domain.IsBeforeCutoff(res.Date, res.Time, now, s.policy.CancellationCutoffHours) {
		s.logger.Warn("Cancel: reservation id=%d past cancellation cutoff", res.ID)
		return nil, fmt.Errorf("%w: cancellations must be made at least %d hour(s) in advance",
			ErrTooLateToCancel, s.policy.CancellationCutoffHours)
	}

	if err := s.reservationRepo.Cancel(ctx, res.ID); err != nil {
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", res.ID)

	updated, err := s.reservationRepo.GetByID(ctx, res.ID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(updated), nil
}

// AdminUpdate обновляет бронирование по ID (админка).
// Терминальные статусы закрыты для правок; допустимые переходы только
// вперёд: pending/confirmed -> completed, no_show или cancelled.
// Отмена идёт штатным путём Cancel (освобождает стол), перенос даты или
// времени возвращает бронь в pending на повторное подтверждение.
func (s *Service) AdminUpdate(ctx context.Context, id int64, req *models.AdminUpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("AdminUpdate: updating reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("AdminUpdate: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("AdminUpdate: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: AdminUpdate - repository error: %v", ErrInternal, err)
	}

	if res.IsTerminal() {
		s.logger.Warn("AdminUpdate: reservation id=%d is in terminal status %s", id, res.Status)
		return nil, fmt.Errorf("%w: reservation is in terminal status %s", ErrForbiddenTransition, res.Status)
	}

	params, err := toUpdateParams(req)
	if err != nil {
		s.logger.Warn("AdminUpdate: invalid input for reservation id=%d: %v", id, err)
		return nil, err
	}

	var targetStatus *domain.ReservationStatus
	if req.Status != nil {
		newStatus, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("AdminUpdate: invalid status=%s for reservation id=%d", *req.Status, id)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}
		if newStatus != res.Status {
			switch newStatus {
			case domain.StatusCompleted, domain.StatusNoShow, domain.StatusCancelled:
				targetStatus = &newStatus
			default:
				// confirmed назначается только через подтверждение с подбором стола
				s.logger.Warn("AdminUpdate: forbidden transition %s -> %s for reservation id=%d",
					res.Status, newStatus, id)
				return nil, fmt.Errorf("%w: cannot transition %s to %s",
					ErrForbiddenTransition, res.Status, newStatus)
			}
		}
	}

	rescheduled := params.Date != nil || params.Time != nil
	if rescheduled {
		if targetStatus != nil {
			s.logger.Warn("AdminUpdate: reschedule combined with status change for reservation id=%d", id)
			return nil, fmt.Errorf("%w: cannot change date or time together with status", ErrInvalidInput)
		}
		if err := s.validateReschedule(res, params); err != nil {
			s.logger.Warn("AdminUpdate: invalid reschedule for reservation id=%d: %v", id, err)
			return nil, err
		}
	}

	if !params.IsEmpty() {
		if err := s.reservationRepo.Update(ctx, id, params); err != nil {
			s.logger.Error("AdminUpdate: repository error for reservation id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: AdminUpdate - repository error: %v", ErrInternal, err)
		}
	}

	switch {
	case targetStatus != nil && *targetStatus == domain.StatusCancelled:
		if err := s.reservationRepo.Cancel(ctx, id); err != nil {
			s.logger.Error("AdminUpdate: failed to cancel reservation id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: AdminUpdate - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("AdminUpdate: reservation id=%d cancelled", id)

	case targetStatus != nil:
		if err := s.reservationRepo.SetStatus(ctx, id, *targetStatus); err != nil {
			s.logger.Error("AdminUpdate: failed to set status for reservation id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: AdminUpdate - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("AdminUpdate: reservation id=%d status %s -> %s", id, res.Status, *targetStatus)

	case rescheduled:
		// Стол подбирался под старое окно, бронь уходит на повторное подтверждение
		if err := s.reservationRepo.ResetToPending(ctx, id); err != nil {
			s.logger.Error("AdminUpdate: failed to reset reservation id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: AdminUpdate - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("AdminUpdate: reservation id=%d rescheduled, reset to pending", id)
	}

	updated, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("AdminUpdate: failed to reload reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: AdminUpdate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AdminUpdate: successfully updated reservation id=%d", id)
	return models.FromDomainReservation(updated), nil
}

// validateReschedule проверяет итоговую пару дата/время против правил работы
// ресторана. Окно заблаговременности на админский перенос не распространяется.
func (s *Service) validateReschedule(res *domain.Reservation, params reservationRepo.UpdateParams) error {
	newDate := res.Date
	if params.Date != nil {
		newDate = *params.Date
	}
	newTime := res.Time
	if params.Time != nil {
		newTime = *params.Time
	}

	now := s.timeProvider.Now()
	if domain.IsDateInPast(newDate, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}
	if !domain.IsOperatingDay(newDate) {
		return fmt.Errorf("%w: restaurant is closed on the requested date", ErrInvalidInput)
	}
	if domain.IsDinnerTime(newTime) && !domain.IsDinnerDay(newDate) {
		return fmt.Errorf("%w: dinner service is not available on the requested date", ErrInvalidInput)
	}

	return nil
}

// Delete удаляет бронирование (админка).
// Физическое удаление; для обычной отмены используется Cancel.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// toUpdateParams конвертирует админский запрос в параметры репозитория
func toUpdateParams(req *models.AdminUpdateReservationRequest) (reservationRepo.UpdateParams, error) {
	params := reservationRepo.UpdateParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PartySize:     req.PartySize,
		Comments:      req.Comments,
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return params, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
		}
		params.Date = &date
	}

	if req.Time != nil {
		at, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			return params, fmt.Errorf("%w: invalid time format", ErrInvalidInput)
		}
		params.Time = &at
	}

	if req.PartySize != nil {
		if *req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize {
			return params, fmt.Errorf("%w: party size must be between %d and %d",
				ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
		}
	}

	return params, nil
}
