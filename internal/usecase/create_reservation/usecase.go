package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
	"github.com/cazingue/BMT-ReservationService/pkg/confcode"
)

// maxCodeAttempts число попыток сгенерировать уникальный код подтверждения.
// Коллизия на пространстве 36^8 практически невозможна, но UNIQUE
// ограничение в БД требует обработки.
const maxCodeAttempts = 3

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка доступности и вставка происходят атомарно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: email=%s, date=%s, time=%s, partySize=%d",
		req.CustomerEmail, req.Date.Format(domain.DateFormat), req.Time, req.PartySize)

	now := uc.timeProvider.Now()

	// 1. Валидация и нормализация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Расписание работы и окно бронирования
	if err := validateSchedule(req.Date, req.Time, now, uc.policy); err != nil {
		uc.logger.Warn("CreateReservation: schedule validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 3. Проверка доступности и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Время должно соответствовать активному слоту каталога
		slots, err := uc.slotRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list time slots: %v", err)
			return fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
		}

		slot := findSlot(slots, req)
		if slot == nil {
			uc.logger.Warn("CreateReservation: time %s does not match any active slot", req.Time)
			return ErrSlotUnavailable
		}

		// 3.2. Проверяем наличие свободного стола. Ужин в четверг с опцией
		// thursdayDinnerAlwaysOpen принимается без проверки столов.
		forced := slot.IsDinner && domain.IsDinnerDay(req.Date) && uc.policy.ThursdayDinnerAlwaysOpen
		if !forced {
			// Активные бронирования на дату с блокировкой (FOR UPDATE)
			reservations, err := uc.reservationRepo.GetBlockingByDate(txCtx, req.Date)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
				return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
			}

			tables, err := uc.tableRepo.ListByMinCapacity(txCtx, req.PartySize)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to list tables: %v", err)
				return fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
			}

			if !hasFreeTable(tables, reservations, req, uc.policy.ServiceDurationMinutes) {
				uc.logger.Warn("CreateReservation: no free table for date=%s time=%s partySize=%d",
					req.Date.Format(domain.DateFormat), req.Time, req.PartySize)
				return ErrSlotUnavailable
			}
		}

		// 3.3. Создаем бронирование в статусе pending. Стол назначит
		// администратор при подтверждении.
		created, err := uc.createWithCode(txCtx, req)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, code=%s",
		result.ID, result.ConfirmationCode)

	return toResponse(result), nil
}

// createWithCode вставляет бронирование, перегенерируя код подтверждения
// при конфликте уникальности
func (uc *UseCase) createWithCode(ctx context.Context, req *Request) (*domain.Reservation, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := confcode.Generate(confcode.Length)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to generate confirmation code: %v", err)
			return nil, fmt.Errorf("%w: failed to generate confirmation code: %v", ErrInternal, err)
		}

		created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			Date:             req.Date,
			Time:             req.Time,
			PartySize:        req.PartySize,
			Comments:         req.Comments,
			Status:           domain.StatusPending,
			ConfirmationCode: code,
			RequiresApproval: true,
		})
		if err == nil {
			return created, nil
		}
		if errors.Is(err, reservationRepo.ErrDuplicateCode) {
			uc.logger.Warn("CreateReservation: confirmation code collision, attempt %d/%d",
				attempt, maxCodeAttempts)
			continue
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	return nil, fmt.Errorf("%w: confirmation code collisions exhausted %d attempts",
		ErrInternal, maxCodeAttempts)
}

// findSlot ищет активный слот каталога с указанным временем начала
func findSlot(slots []*domain.TimeSlot, req *Request) *domain.TimeSlot {
	for _, slot := range slots {
		if slot.StartTime == req.Time {
			return slot
		}
	}
	return nil
}

// hasFreeTable проверяет, есть ли стол без конфликтующего бронирования
// на окно [time, time+duration)
func hasFreeTable(tables []*domain.Table, reservations []*domain.Reservation, req *Request, durationMinutes int) bool {
	for _, table := range tables {
		if !domain.HasConflict(table.ID, req.Time, durationMinutes, reservations) {
			return true
		}
	}
	return false
}
