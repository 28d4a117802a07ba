package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// UseCase use case изменения бронирования клиентом по коду подтверждения
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	slotRepo        TimeSlotRepository
	txManager       TransactionManager
	policy          domain.ReservationPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	slotRepo TimeSlotRepository,
	txManager TransactionManager,
	policy domain.ReservationPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения бронирования.
// Перенос даты или времени проходит полную проверку доступности и
// сбрасывает бронирование в pending: стол освобождается, администратор
// подтверждает заново.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: code=%s", req.ConfirmationCode)

	// 1. Валидация и нормализация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Reservation

	// 2. Проверки и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByCode(txCtx, req.ConfirmationCode)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation code=%s not found", req.ConfirmationCode)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation: %v", err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.1. Финальные статусы не редактируются
		if res.IsTerminal() {
			uc.logger.Warn("UpdateReservation: reservation id=%d has terminal status %s", res.ID, res.Status)
			return ErrForbiddenTransition
		}

		// 2.2. Окно модификации считается от ТЕКУЩЕГО времени бронирования
		if !domain.IsBeforeCutoff(res.Date, res.Time, now, uc.policy.CancellationCutoffHours) {
			uc.logger.Warn("UpdateReservation: reservation id=%d past modification cutoff", res.ID)
			return fmt.Errorf("%w: modifications must be made at least %d hour(s) in advance",
				ErrTooLateToModify, uc.policy.CancellationCutoffHours)
		}

		rescheduled := req.Date != nil || req.Time != nil

		// 2.3. Перенос проходит проверку расписания и доступности
		if rescheduled {
			newDate := res.Date
			if req.Date != nil {
				newDate = *req.Date
			}
			newTime := res.Time
			if req.Time != nil {
				newTime = *req.Time
			}
			newPartySize := res.PartySize
			if req.PartySize != nil {
				newPartySize = *req.PartySize
			}

			if err := validateSchedule(newDate, newTime, now, uc.policy); err != nil {
				uc.logger.Warn("UpdateReservation: schedule validation failed: %v", err)
				return err
			}

			if err := uc.checkAvailability(txCtx, res.ID, newDate, newTime, newPartySize); err != nil {
				return err
			}
		}

		// 2.4. Обновляем поля
		err = uc.reservationRepo.Update(txCtx, res.ID, reservationRepo.UpdateParams{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.Time,
			PartySize:     req.PartySize,
			Comments:      req.Comments,
		})
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		// 2.5. Перенос сбрасывает статус и освобождает стол
		if rescheduled {
			if err := uc.reservationRepo.ResetToPending(txCtx, res.ID); err != nil {
				uc.logger.Error("UpdateReservation: failed to reset reservation id=%d: %v", res.ID, err)
				return fmt.Errorf("%w: failed to reset reservation: %v", ErrInternal, err)
			}
			uc.logger.Info("UpdateReservation: reservation id=%d rescheduled, reset to pending", res.ID)
		}

		updated, err := uc.reservationRepo.GetByID(txCtx, res.ID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to reload reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to reload reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

	return toResponse(result), nil
}

// checkAvailability проверяет доступность нового слота. Собственное
// бронирование исключается из конфликтов: его стол освобождается при
// переносе.
func (uc *UseCase) checkAvailability(ctx context.Context, selfID int64, date time.Time, at types.TimeString, partySize int) error {
	slots, err := uc.slotRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to list time slots: %v", err)
		return fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}

	var slot *domain.TimeSlot
	for _, s := range slots {
		if s.StartTime == at {
			slot = s
			break
		}
	}
	if slot == nil {
		uc.logger.Warn("UpdateReservation: time %s does not match any active slot", at)
		return ErrSlotUnavailable
	}

	// Ужин в четверг с опцией thursdayDinnerAlwaysOpen принимается
	// без проверки столов
	if slot.IsDinner && domain.IsDinnerDay(date) && uc.policy.ThursdayDinnerAlwaysOpen {
		return nil
	}

	reservations, err := uc.reservationRepo.GetBlockingByDate(ctx, date)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to get reservations: %v", err)
		return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	others := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ID != selfID {
			others = append(others, r)
		}
	}

	tables, err := uc.tableRepo.ListByMinCapacity(ctx, partySize)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to list tables: %v", err)
		return fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	for _, table := range tables {
		if !domain.HasConflict(table.ID, at, uc.policy.ServiceDurationMinutes, others) {
			return nil
		}
	}

	uc.logger.Warn("UpdateReservation: no free table for date=%s time=%s partySize=%d",
		date.Format(domain.DateFormat), at, partySize)
	return ErrSlotUnavailable
}
