package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

// 2026-08-27 четверг, 2026-08-29 суббота, 2026-08-31 понедельник.
var (
	testNow      = time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	testMonday   = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	testThursday = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	testSaturday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeTableRepo struct {
	tables []*domain.Table
	err    error
}

func (f *fakeTableRepo) ListByMinCapacity(_ context.Context, _ int) ([]*domain.Table, error) {
	return f.tables, f.err
}

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
	err   error
}

func (f *fakeSlotRepo) ListActive(_ context.Context) ([]*domain.TimeSlot, error) {
	return f.slots, f.err
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

func defaultCatalog() []*domain.TimeSlot {
	return []*domain.TimeSlot{
		{ID: 1, StartTime: "12:00", EndTime: "14:00", IsLunch: true, IsActive: true},
		{ID: 2, StartTime: "14:30", EndTime: "16:30", IsLunch: true, IsActive: true},
		{ID: 3, StartTime: "19:00", EndTime: "21:00", IsDinner: true, IsActive: true},
	}
}

func newTestUseCase(
	reservations []*domain.Reservation,
	tables []*domain.Table,
	slots []*domain.TimeSlot,
	policy domain.ReservationPolicy,
) *UseCase {
	uc := NewUseCase(
		&fakeReservationRepo{reservations: reservations},
		&fakeTableRepo{tables: tables},
		&fakeSlotRepo{slots: slots},
		policy,
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func availabilityByID(entries []domain.SlotAvailability) map[int64]bool {
	result := make(map[int64]bool, len(entries))
	for _, e := range entries {
		result[e.SlotID] = e.Available
	}
	return result
}

func TestExecute_WeekendAllSlotsClosed(t *testing.T) {
	tables := []*domain.Table{{ID: 1, Number: 1, Capacity: 4}}
	uc := newTestUseCase(nil, tables, defaultCatalog(), domain.DefaultPolicy())

	resp, err := uc.Execute(context.Background(), &Request{Date: testSaturday, PartySize: 2})
	require.NoError(t, err)

	for _, entry := range append(resp.Lunch, resp.Dinner...) {
		assert.False(t, entry.Available, "slot %d must be closed on weekend", entry.SlotID)
	}
}

func TestExecute_MondayLunchOpenDinnerClosed(t *testing.T) {
	tables := []*domain.Table{{ID: 1, Number: 1, Capacity: 4}}
	uc := newTestUseCase(nil, tables, defaultCatalog(), domain.DefaultPolicy())

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday, PartySize: 2})
	require.NoError(t, err)

	lunch := availabilityByID(resp.Lunch)
	assert.True(t, lunch[1])
	assert.True(t, lunch[2])

	dinner := availabilityByID(resp.Dinner)
	assert.False(t, dinner[3], "dinner is Thursday-only")
}

func TestExecute_ThursdayDinnerForcedOpen(t *testing.T) {
	// Ни одного стола, но четверговый ужин объявлен доступным политикой
	uc := newTestUseCase(nil, nil, defaultCatalog(), domain.DefaultPolicy())

	resp, err := uc.Execute(context.Background(), &Request{Date: testThursday, PartySize: 2})
	require.NoError(t, err)

	dinner := availabilityByID(resp.Dinner)
	assert.True(t, dinner[3])

	// Обеденные слоты без столов недоступны
	lunch := availabilityByID(resp.Lunch)
	assert.False(t, lunch[1])
	assert.False(t, lunch[2])
}

func TestExecute_ThursdayDinnerChecksTablesWhenOverrideOff(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.ThursdayDinnerAlwaysOpen = false

	uc := newTestUseCase(nil, nil, defaultCatalog(), policy)

	resp, err := uc.Execute(context.Background(), &Request{Date: testThursday, PartySize: 2})
	require.NoError(t, err)

	dinner := availabilityByID(resp.Dinner)
	assert.False(t, dinner[3], "no tables means no dinner when override is off")
}

func TestExecute_ConflictingReservationBlocksSlot(t *testing.T) {
	tableID := int64(1)
	tables := []*domain.Table{{ID: tableID, Number: 1, Capacity: 4}}

	// Окно 12:30-14:30: перекрывает слот 12:00, касается слота 14:30
	reservations := []*domain.Reservation{
		{ID: 10, Time: "12:30", Status: domain.StatusConfirmed, TableID: &tableID},
	}

	uc := newTestUseCase(reservations, tables, defaultCatalog(), domain.DefaultPolicy())

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday, PartySize: 2})
	require.NoError(t, err)

	lunch := availabilityByID(resp.Lunch)
	assert.False(t, lunch[1], "12:00 overlaps the 12:30 reservation")
	assert.True(t, lunch[2], "14:30 starts exactly when the window ends")
}

func TestExecute_SecondTableKeepsSlotOpen(t *testing.T) {
	tableID := int64(1)
	tables := []*domain.Table{
		{ID: tableID, Number: 1, Capacity: 4},
		{ID: 2, Number: 2, Capacity: 6},
	}
	reservations := []*domain.Reservation{
		{ID: 10, Time: "12:00", Status: domain.StatusConfirmed, TableID: &tableID},
	}

	uc := newTestUseCase(reservations, tables, defaultCatalog(), domain.DefaultPolicy())

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday, PartySize: 2})
	require.NoError(t, err)

	lunch := availabilityByID(resp.Lunch)
	assert.True(t, lunch[1], "second table is still free")
}

func TestExecute_RepeatedReadsReturnSameResult(t *testing.T) {
	tableID := int64(1)
	tables := []*domain.Table{
		{ID: tableID, Number: 1, Capacity: 4},
		{ID: 2, Number: 2, Capacity: 6},
	}
	reservations := []*domain.Reservation{
		{ID: 10, Time: "12:30", Status: domain.StatusConfirmed, TableID: &tableID},
	}

	uc := newTestUseCase(reservations, tables, defaultCatalog(), domain.DefaultPolicy())
	req := &Request{Date: testMonday, PartySize: 2}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Чтение ничего не меняет: повторный запрос даёт тот же ответ
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(nil, nil, defaultCatalog(), domain.DefaultPolicy())

	_, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, -3), PartySize: 2})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Date: testMonday, PartySize: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testMonday, PartySize: domain.MaxPartySize + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PartySize: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{err: errors.New("db down")},
		&fakeTableRepo{},
		&fakeSlotRepo{slots: defaultCatalog()},
		domain.DefaultPolicy(),
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testNow}

	_, err := uc.Execute(context.Background(), &Request{Date: testMonday, PartySize: 2})
	assert.ErrorIs(t, err, ErrInternal)
}
