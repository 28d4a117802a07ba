package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	"github.com/cazingue/BMT-ReservationService/pkg/dbmetrics"
	"github.com/cazingue/BMT-ReservationService/pkg/psqlbuilder"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// Столбцы reservations с присоединённой информацией о столе.
// LEFT JOIN: у pending-бронирований стол ещё не назначен.
var selectColumns = []string{
	"r.id",
	"r.customer_name",
	"r.customer_email",
	"r.customer_phone",
	"r.date",
	"r.time",
	"r.party_size",
	"r.comments",
	"r.status",
	"r.confirmation_code",
	"r.table_id",
	"r.requires_approval",
	"t.number AS table_number",
	"t.capacity AS table_capacity",
	"r.cancelled_at",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpdateParams перечисляет поля, которые клиент может менять в своём
// бронировании. Статус и назначенный стол меняются только выделенными
// методами (SetStatus, AssignTable, Cancel, ResetToPending) — никакой
// динамической сборки запроса из произвольных ключей.
type UpdateParams struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Date          *time.Time
	Time          *types.TimeString
	PartySize     *int
	Comments      *string
}

// IsEmpty сообщает, что ни одно поле не задано
func (p UpdateParams) IsEmpty() bool {
	return p.CustomerName == nil && p.CustomerEmail == nil && p.CustomerPhone == nil &&
		p.Date == nil && p.Time == nil && p.PartySize == nil && p.Comments == nil
}

// Create создает новое бронирование.
// Конфликт уникальности confirmation_code транслируется в ErrDuplicateCode —
// вызывающая сторона генерирует новый код и повторяет вставку.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"date",
			"time",
			"party_size",
			"comments",
			"status",
			"confirmation_code",
			"table_id",
			"requires_approval",
		).
		Values(
			res.CustomerName,
			res.CustomerEmail,
			res.CustomerPhone,
			res.Date,
			res.Time,
			res.PartySize,
			res.Comments,
			res.Status,
			res.ConfirmationCode,
			res.TableID,
			res.RequiresApproval,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "reservations_confirmation_code_key" {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"r.id": id}, "GetByID")
}

// GetByCode получает бронирование по коду подтверждения
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"r.confirmation_code": code}, "GetByCode")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("reservations r").
		LeftJoin("tables t ON t.id = r.table_id").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	return res, nil
}

// GetByDate получает все бронирования на дату, отсортированные по времени
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("reservations r").
		LeftJoin("tables t ON t.id = r.table_id").
		Where(squirrel.Eq{"r.date": date}).
		OrderBy("r.time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetBlockingByDate получает бронирования на дату, занимающие столы
// (статус не cancelled/no_show).
//
// Внутри транзакции добавляет FOR UPDATE OF r — это блокировка, на которой
// держится защита от двойного бронирования в use cases создания,
// подтверждения и переноса.
func (r *Repository) GetBlockingByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("reservations r").
		LeftJoin("tables t ON t.id = r.table_id").
		Where(squirrel.Eq{"r.date": date}).
		Where(squirrel.Eq{"r.status": blocking}).
		OrderBy("r.time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Search ищет бронирования по фильтрам админки
func (r *Repository) Search(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("reservations r").
		LeftJoin("tables t ON t.id = r.table_id")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": *filter.Status})
	}
	if filter.CustomerName != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"r.customer_name": "%" + *filter.CustomerName + "%"})
	}
	if filter.CustomerEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"r.customer_email": "%" + *filter.CustomerEmail + "%"})
	}

	query, args, err := selectBuilder.
		OrderBy("r.date ASC, r.time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CountBlockingFromDate считает бронирования стола, занимающие его
// начиная с указанной даты. Используется как guard при удалении стола.
func (r *Repository) CountBlockingFromDate(ctx context.Context, tableID int64, from time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"table_id": tableID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Eq{"status": blocking}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountBlockingFromDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBlockingFromDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет разрешённые клиентские поля бронирования
func (r *Repository) Update(ctx context.Context, id int64, params UpdateParams) error {
	if params.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if params.CustomerName != nil {
		updateBuilder = updateBuilder.Set("customer_name", *params.CustomerName)
	}
	if params.CustomerEmail != nil {
		updateBuilder = updateBuilder.Set("customer_email", *params.CustomerEmail)
	}
	if params.CustomerPhone != nil {
		updateBuilder = updateBuilder.Set("customer_phone", *params.CustomerPhone)
	}
	if params.Date != nil {
		updateBuilder = updateBuilder.Set("date", *params.Date)
	}
	if params.Time != nil {
		updateBuilder = updateBuilder.Set("time", *params.Time)
	}
	if params.PartySize != nil {
		updateBuilder = updateBuilder.Set("party_size", *params.PartySize)
	}
	if params.Comments != nil {
		updateBuilder = updateBuilder.Set("comments", *params.Comments)
	}

	return r.execUpdate(ctx, executor, updateBuilder, "Update")
}

// SetStatus обновляет статус бронирования
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, executor, updateBuilder, "SetStatus")
}

// AssignTable подтверждает бронирование и назначает стол
func (r *Repository) AssignTable(ctx context.Context, id int64, tableID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", domain.StatusConfirmed).
		Set("table_id", tableID).
		Set("requires_approval", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, executor, updateBuilder, "AssignTable")
}

// Cancel отменяет бронирование и освобождает стол
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("table_id", nil).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, executor, updateBuilder, "Cancel")
}

// ResetToPending сбрасывает бронирование в pending и освобождает стол.
// Вызывается при изменении даты или времени: прежнее подтверждение
// и назначенный стол теряют силу.
func (r *Repository) ResetToPending(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", domain.StatusPending).
		Set("table_id", nil).
		Set("requires_approval", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, executor, updateBuilder, "ResetToPending")
}

// Delete удаляет бронирование (физическое удаление, только для админа)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) execUpdate(ctx context.Context, executor DBExecutor, builder squirrel.UpdateBuilder, op string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var cancelledAt, createdAt, updatedAt sql.NullTime
	var tableNumber, tableCapacity sql.NullInt64

	err := row.Scan(
		&res.ID,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.Date,
		&res.Time,
		&res.PartySize,
		&res.Comments,
		&res.Status,
		&res.ConfirmationCode,
		&res.TableID,
		&res.RequiresApproval,
		&tableNumber,
		&tableCapacity,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	if tableNumber.Valid {
		n := int(tableNumber.Int64)
		res.TableNumber = &n
	}
	if tableCapacity.Valid {
		c := int(tableCapacity.Int64)
		res.TableCapacity = &c
	}
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
