package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
	"github.com/cazingue/BMT-ReservationService/pkg/ptr"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// 2026-08-27 четверг, 2026-08-29 суббота, 2026-08-31 понедельник.
var (
	testNow      = time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	testMonday   = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	testTuesday  = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	testSaturday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
)

// fakeReservationRepo хранит бронирования в памяти и применяет Update и
// ResetToPending к хранимой копии, как это делает реальный репозиторий.
type fakeReservationRepo struct {
	store    map[int64]*domain.Reservation
	blocking []*domain.Reservation
}

func (f *fakeReservationRepo) GetByCode(_ context.Context, code string) (*domain.Reservation, error) {
	for _, res := range f.store {
		if res.ConfirmationCode == code {
			copied := *res
			return &copied, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.store[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) GetBlockingByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.blocking, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, id int64, params reservationRepo.UpdateParams) error {
	res, ok := f.store[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if params.CustomerName != nil {
		res.CustomerName = *params.CustomerName
	}
	if params.CustomerEmail != nil {
		res.CustomerEmail = *params.CustomerEmail
	}
	if params.CustomerPhone != nil {
		res.CustomerPhone = *params.CustomerPhone
	}
	if params.Date != nil {
		res.Date = *params.Date
	}
	if params.Time != nil {
		res.Time = *params.Time
	}
	if params.PartySize != nil {
		res.PartySize = *params.PartySize
	}
	if params.Comments != nil {
		res.Comments = *params.Comments
	}
	return nil
}

func (f *fakeReservationRepo) ResetToPending(_ context.Context, id int64) error {
	res, ok := f.store[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = domain.StatusPending
	res.TableID = nil
	res.TableNumber = nil
	res.TableCapacity = nil
	res.RequiresApproval = true
	return nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) ListByMinCapacity(_ context.Context, _ int) ([]*domain.Table, error) {
	return f.tables, nil
}

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeSlotRepo) ListActive(_ context.Context) ([]*domain.TimeSlot, error) {
	return f.slots, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedReservation() *domain.Reservation {
	tableID := int64(5)
	number := 5
	capacity := 4
	return &domain.Reservation{
		ID:               1,
		CustomerName:     "Jean Dupont",
		CustomerEmail:    "jean@example.com",
		CustomerPhone:    "+33612345678",
		Date:             testMonday,
		Time:             "12:30",
		PartySize:        2,
		Status:           domain.StatusConfirmed,
		ConfirmationCode: "AAAA1111",
		TableID:          &tableID,
		TableNumber:      &number,
		TableCapacity:    &capacity,
	}
}

func defaultCatalog() []*domain.TimeSlot {
	return []*domain.TimeSlot{
		{ID: 1, StartTime: "12:30", EndTime: "14:30", IsLunch: true, IsActive: true},
		{ID: 2, StartTime: "13:00", EndTime: "15:00", IsLunch: true, IsActive: true},
		{ID: 3, StartTime: "19:00", EndTime: "21:00", IsDinner: true, IsActive: true},
	}
}

func newTestUseCase(repo *fakeReservationRepo, tables []*domain.Table) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeTableRepo{tables: tables},
		&fakeSlotRepo{slots: defaultCatalog()},
		fakeTxManager{},
		domain.DefaultPolicy(),
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_ContactUpdateKeepsStatus(t *testing.T) {
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: confirmedReservation()}}
	uc := newTestUseCase(repo, []*domain.Table{{ID: 5, Capacity: 4}})

	resp, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		CustomerName:     ptr.Ptr("Marie <i>Curie</i>"),
		Comments:         ptr.Ptr("terrasse"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Marie Curie", resp.CustomerName)
	assert.Equal(t, "terrasse", resp.Comments)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status, "contact update must not reset the status")
	require.NotNil(t, resp.TableID)
	assert.Equal(t, int64(5), *resp.TableID, "table stays assigned")
}

func TestExecute_RescheduleResetsToPending(t *testing.T) {
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: confirmedReservation()}}
	uc := newTestUseCase(repo, []*domain.Table{{ID: 5, Capacity: 4}})

	newTime := types.TimeString("13:00")
	resp, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		Time:             &newTime,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.True(t, resp.RequiresApproval)
	assert.Nil(t, resp.TableID, "reschedule releases the table")
	assert.Equal(t, newTime, resp.Time)
}

func TestExecute_RescheduleDateResetsToPending(t *testing.T) {
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: confirmedReservation()}}
	uc := newTestUseCase(repo, []*domain.Table{{ID: 5, Capacity: 4}})

	resp, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		Date:             &testTuesday,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Nil(t, resp.TableID)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{}}
	uc := newTestUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), &Request{ConfirmationCode: "NOPE0000"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_TerminalStatusForbidden(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusCancelled,
		domain.StatusCompleted,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := confirmedReservation()
			res.Status = status
			repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: res}}
			uc := newTestUseCase(repo, nil)

			_, err := uc.Execute(context.Background(), &Request{
				ConfirmationCode: "AAAA1111",
				Comments:         ptr.Ptr("hello"),
			})
			assert.ErrorIs(t, err, ErrForbiddenTransition)
		})
	}
}

func TestExecute_PastCutoffTooLate(t *testing.T) {
	res := confirmedReservation()
	res.Date = testNow // сегодня
	res.Time = "09:00" // через час, cutoff 2 часа
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: res}}
	uc := newTestUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		Comments:         ptr.Ptr("hello"),
	})
	assert.ErrorIs(t, err, ErrTooLateToModify)
}

func TestExecute_RescheduleToWeekendRejected(t *testing.T) {
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: confirmedReservation()}}
	uc := newTestUseCase(repo, []*domain.Table{{ID: 5, Capacity: 4}})

	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		Date:             &testSaturday,
	})
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_RescheduleDinnerToMondayRejected(t *testing.T) {
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: confirmedReservation()}}
	uc := newTestUseCase(repo, []*domain.Table{{ID: 5, Capacity: 4}})

	dinner := types.TimeString("19:00")
	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		Time:             &dinner,
	})
	assert.ErrorIs(t, err, ErrDinnerNotAvailable)
}

func TestExecute_RescheduleToTakenSlotRejected(t *testing.T) {
	tableID := int64(5)
	repo := &fakeReservationRepo{
		store: map[int64]*domain.Reservation{1: confirmedReservation()},
		blocking: []*domain.Reservation{
			{ID: 9, Time: "13:00", Status: domain.StatusConfirmed, TableID: &tableID},
		},
	}
	uc := newTestUseCase(repo, []*domain.Table{{ID: tableID, Capacity: 4}})

	newTime := types.TimeString("13:00")
	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		Time:             &newTime,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_OwnReservationDoesNotBlockReschedule(t *testing.T) {
	// Единственный конфликт — собственное бронирование: при переносе
	// его стол освобождается и не считается занятым
	own := confirmedReservation()
	repo := &fakeReservationRepo{
		store:    map[int64]*domain.Reservation{1: own},
		blocking: []*domain.Reservation{own},
	}
	uc := newTestUseCase(repo, []*domain.Table{{ID: 5, Capacity: 4}})

	newTime := types.TimeString("13:00")
	resp, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		Time:             &newTime,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_ValidationFailures(t *testing.T) {
	repo := &fakeReservationRepo{store: map[int64]*domain.Reservation{1: confirmedReservation()}}
	uc := newTestUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), &Request{ConfirmationCode: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		CustomerEmail:    ptr.Ptr("not-an-email"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ConfirmationCode: "AAAA1111",
		PartySize:        ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
