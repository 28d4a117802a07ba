package approve_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case подтверждения бронирования с назначением стола
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	policy          domain.ReservationPolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	policy domain.ReservationPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		policy:          policy,
		logger:          logger,
	}
}

// Execute подтверждает бронирование: находит наименьший подходящий стол
// без конфликтов и переводит бронирование в статус confirmed.
// Использует сериализуемую транзакцию: два администратора не могут
// назначить один стол на пересекающиеся окна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveReservation: id=%d", req.ReservationID)

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ApproveReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("ApproveReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Подтверждать можно только pending
		if res.Status != domain.StatusPending {
			uc.logger.Warn("ApproveReservation: reservation id=%d has status %s", res.ID, res.Status)
			return ErrNotPending
		}

		// 3. Активные бронирования на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetBlockingByDate(txCtx, res.Date)
		if err != nil {
			uc.logger.Error("ApproveReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4. Столы достаточной вместимости по возрастанию: самый маленький
		// подходящий стол назначается первым
		tables, err := uc.tableRepo.ListByMinCapacity(txCtx, res.PartySize)
		if err != nil {
			uc.logger.Error("ApproveReservation: failed to list tables: %v", err)
			return fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
		}

		table := findFreeTable(tables, reservations, res, uc.policy.ServiceDurationMinutes)
		if table == nil {
			uc.logger.Warn("ApproveReservation: no free table for reservation id=%d (date=%s, time=%s, partySize=%d)",
				res.ID, res.Date.Format(domain.DateFormat), res.Time, res.PartySize)
			return ErrNoTableAvailable
		}

		// 5. Назначаем стол и подтверждаем
		if err := uc.reservationRepo.AssignTable(txCtx, res.ID, table.ID); err != nil {
			uc.logger.Error("ApproveReservation: failed to assign table id=%d: %v", table.ID, err)
			return fmt.Errorf("%w: failed to assign table: %v", ErrInternal, err)
		}

		res.Status = domain.StatusConfirmed
		res.TableID = &table.ID
		res.TableNumber = &table.Number
		res.TableCapacity = &table.Capacity
		res.RequiresApproval = false

		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApproveReservation: reservation id=%d confirmed, table id=%d",
		result.ID, *result.TableID)

	return toResponse(result), nil
}

// findFreeTable возвращает первый стол без конфликтующего бронирования.
// Собственное бронирование в списке не мешает: у pending нет стола.
func findFreeTable(tables []*domain.Table, reservations []*domain.Reservation, res *domain.Reservation, durationMinutes int) *domain.Table {
	for _, table := range tables {
		if !domain.HasConflict(table.ID, res.Time, durationMinutes, reservations) {
			return table
		}
	}
	return nil
}
