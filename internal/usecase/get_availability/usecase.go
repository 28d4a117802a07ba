package get_availability

import (
	"context"
	"fmt"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

// UseCase use case проверки доступности слотов
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	slotRepo        TimeSlotRepository
	policy          domain.ReservationPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	slotRepo TimeSlotRepository,
	policy domain.ReservationPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		slotRepo:        slotRepo,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case проверки доступности.
// Возвращает весь активный каталог слотов, каждый с флагом доступности
// для указанной даты и количества гостей, сгруппированный на обед и ужин.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, partySize=%d",
		req.Date.Format(domain.DateFormat), req.PartySize)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Активный каталог слотов
	slots, err := uc.slotRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}

	// 3. Столы достаточной вместимости (по возрастанию)
	tables, err := uc.tableRepo.ListByMinCapacity(ctx, req.PartySize)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// 4. Все бронирования на дату (released статусы отсеет проверка конфликтов)
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Аннотируем каждый слот доступностью
	annotated := annotateSlots(
		slots,
		tables,
		reservations,
		req.Date,
		uc.policy.ServiceDurationMinutes,
		uc.policy.ThursdayDinnerAlwaysOpen,
	)

	// 6. Группируем на обед и ужин
	lunch := make([]domain.SlotAvailability, 0)
	dinner := make([]domain.SlotAvailability, 0)
	for _, entry := range annotated {
		if entry.IsLunch {
			lunch = append(lunch, entry)
		}
		if entry.IsDinner {
			dinner = append(dinner, entry)
		}
	}

	uc.logger.Info("GetAvailability: date=%s, %d lunch slots, %d dinner slots",
		req.Date.Format(domain.DateFormat), len(lunch), len(dinner))

	return &Response{
		Date:      req.Date,
		PartySize: req.PartySize,
		Lunch:     lunch,
		Dinner:    dinner,
	}, nil
}
