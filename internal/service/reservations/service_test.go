package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	reservationRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/reservation"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
	"github.com/cazingue/BMT-ReservationService/pkg/ptr"
)

var (
	testNow    = time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	testMonday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	store        map[int64]*domain.Reservation
	searched     domain.ReservationFilter
	setStatus    map[int64]domain.ReservationStatus
	cancelledIDs []int64
	resetIDs     []int64
	deletedIDs   []int64
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	store := make(map[int64]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		store[r.ID] = r
	}
	return &fakeReservationRepo{store: store, setStatus: make(map[int64]domain.ReservationStatus)}
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.store[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
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

func (f *fakeReservationRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, res := range f.store {
		if domain.IsSameDay(res.Date, date) {
			result = append(result, res)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) Search(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.searched = filter
	result := make([]*domain.Reservation, 0, len(f.store))
	for _, res := range f.store {
		result = append(result, res)
	}
	return result, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, id int64, params reservationRepo.UpdateParams) error {
	res, ok := f.store[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if params.CustomerName != nil {
		res.CustomerName = *params.CustomerName
	}
	if params.PartySize != nil {
		res.PartySize = *params.PartySize
	}
	if params.Date != nil {
		res.Date = *params.Date
	}
	if params.Time != nil {
		res.Time = *params.Time
	}
	if params.Comments != nil {
		res.Comments = *params.Comments
	}
	return nil
}

func (f *fakeReservationRepo) SetStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	res, ok := f.store[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	f.setStatus[id] = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64) error {
	res, ok := f.store[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = domain.StatusCancelled
	res.TableID = nil
	cancelledAt := testNow
	res.CancelledAt = &cancelledAt
	f.cancelledIDs = append(f.cancelledIDs, id)
	return nil
}

func (f *fakeReservationRepo) ResetToPending(_ context.Context, id int64) error {
	res, ok := f.store[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = domain.StatusPending
	res.TableID = nil
	res.RequiresApproval = true
	f.resetIDs = append(f.resetIDs, id)
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.store, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
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

func testReservation(id int64, code string) *domain.Reservation {
	tableID := int64(3)
	return &domain.Reservation{
		ID:               id,
		CustomerName:     "Jean Dupont",
		CustomerEmail:    "jean@example.com",
		CustomerPhone:    "+33612345678",
		Date:             testMonday,
		Time:             "12:30",
		PartySize:        2,
		Status:           domain.StatusConfirmed,
		ConfirmationCode: code,
		TableID:          &tableID,
	}
}

func newTestService(repo *fakeReservationRepo) *Service {
	svc := NewService(repo, domain.DefaultPolicy(), nopLogger{})
	svc.timeProvider = &fixedClock{now: testNow}
	return svc
}

func TestGetByCode(t *testing.T) {
	repo := newFakeRepo(testReservation(1, "AAAA1111"))
	svc := newTestService(repo)

	resp, err := svc.GetByCode(context.Background(), "AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "AAAA1111", resp.ConfirmationCode)

	_, err = svc.GetByCode(context.Background(), "MISSING1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeRepo(testReservation(1, "AAAA1111"))
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), "AAAA1111")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Nil(t, resp.TableID, "cancellation releases the table")
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_TerminalStatusRejected(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusCancelled,
		domain.StatusCompleted,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := testReservation(1, "AAAA1111")
			res.Status = status
			svc := newTestService(newFakeRepo(res))

			_, err := svc.Cancel(context.Background(), "AAAA1111")
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_PastCutoffRejected(t *testing.T) {
	res := testReservation(1, "AAAA1111")
	res.Date = testNow
	res.Time = "09:00" // через час, cutoff 2 часа
	svc := newTestService(newFakeRepo(res))

	_, err := svc.Cancel(context.Background(), "AAAA1111")
	assert.ErrorIs(t, err, ErrTooLateToCancel)
}

func TestSearch_BuildsFilter(t *testing.T) {
	repo := newFakeRepo(testReservation(1, "AAAA1111"))
	svc := newTestService(repo)

	resp, err := svc.Search(context.Background(), &models.SearchReservationsRequest{
		Date:   ptr.Ptr(testMonday),
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)

	require.NotNil(t, repo.searched.Date)
	assert.Equal(t, testMonday, *repo.searched.Date)
	require.NotNil(t, repo.searched.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.searched.Status)
}

func TestSearch_InvalidStatusRejected(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Search(context.Background(), &models.SearchReservationsRequest{
		Status: ptr.Ptr("approved"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetToday(t *testing.T) {
	today := testReservation(1, "AAAA1111")
	today.Date = testNow
	tomorrow := testReservation(2, "BBBB2222")
	tomorrow.Date = testNow.AddDate(0, 0, 1)

	svc := newTestService(newFakeRepo(today, tomorrow))

	resp, err := svc.GetToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
}

func TestAdminUpdate_FieldsAndStatus(t *testing.T) {
	repo := newFakeRepo(testReservation(1, "AAAA1111"))
	svc := newTestService(repo)

	resp, err := svc.AdminUpdate(context.Background(), 1, &models.AdminUpdateReservationRequest{
		CustomerName: ptr.Ptr("Marie Curie"),
		PartySize:    ptr.Ptr(4),
		Status:       ptr.Ptr("no_show"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Marie Curie", resp.CustomerName)
	assert.Equal(t, 4, resp.PartySize)
	assert.Equal(t, string(domain.StatusNoShow), resp.Status)
	assert.Equal(t, domain.StatusNoShow, repo.setStatus[1])
}

func TestAdminUpdate_TerminalStatusLocked(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusCancelled,
		domain.StatusCompleted,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := testReservation(1, "AAAA1111")
			res.Status = status
			repo := newFakeRepo(res)
			svc := newTestService(repo)

			_, err := svc.AdminUpdate(context.Background(), 1, &models.AdminUpdateReservationRequest{
				Status: ptr.Ptr("confirmed"),
			})
			assert.ErrorIs(t, err, ErrForbiddenTransition)
			assert.Equal(t, status, repo.store[1].Status, "terminal status must stay")
		})
	}
}

func TestAdminUpdate_CancelReleasesTable(t *testing.T) {
	repo := newFakeRepo(testReservation(1, "AAAA1111"))
	svc := newTestService(repo)

	resp, err := svc.AdminUpdate(context.Background(), 1, &models.AdminUpdateReservationRequest{
		Status: ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Nil(t, resp.TableID, "cancellation releases the table")
	assert.NotNil(t, resp.CancelledAt)

	assert.Equal(t, []int64{1}, repo.cancelledIDs, "cancellation goes through Cancel")
	assert.Empty(t, repo.setStatus)
}

func TestAdminUpdate_ConfirmGoesThroughApproval(t *testing.T) {
	res := testReservation(1, "AAAA1111")
	res.Status = domain.StatusPending
	res.TableID = nil
	svc := newTestService(newFakeRepo(res))

	_, err := svc.AdminUpdate(context.Background(), 1, &models.AdminUpdateReservationRequest{
		Status: ptr.Ptr("confirmed"),
	})
	assert.ErrorIs(t, err, ErrForbiddenTransition)
}

func TestAdminUpdate_RescheduleResetsToPending(t *testing.T) {
	repo := newFakeRepo(testReservation(1, "AAAA1111"))
	svc := newTestService(repo)

	resp, err := svc.AdminUpdate(context.Background(), 1, &models.AdminUpdateReservationRequest{
		Date: ptr.Ptr("2026-09-01"), // вторник
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Nil(t, resp.TableID, "table was picked for the old window")
	assert.True(t, resp.RequiresApproval)
	assert.Equal(t, []int64{1}, repo.resetIDs)
}

func TestAdminUpdate_RescheduleValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.AdminUpdateReservationRequest
	}{
		{"weekend date", &models.AdminUpdateReservationRequest{Date: ptr.Ptr("2026-08-29")}},
		{"past date", &models.AdminUpdateReservationRequest{Date: ptr.Ptr("2026-08-20")}},
		{"dinner on monday", &models.AdminUpdateReservationRequest{Time: ptr.Ptr("19:00")}},
		{"reschedule with status change", &models.AdminUpdateReservationRequest{
			Date:   ptr.Ptr("2026-09-01"),
			Status: ptr.Ptr("completed"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(testReservation(1, "AAAA1111"))
			svc := newTestService(repo)

			_, err := svc.AdminUpdate(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, domain.StatusConfirmed, repo.store[1].Status, "nothing persisted")
		})
	}
}

func TestAdminUpdate_InvalidStatusRejected(t *testing.T) {
	svc := newTestService(newFakeRepo(testReservation(1, "AAAA1111")))

	_, err := svc.AdminUpdate(context.Background(), 1, &models.AdminUpdateReservationRequest{
		Status: ptr.Ptr("approved"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAdminUpdate_InvalidDateRejected(t *testing.T) {
	svc := newTestService(newFakeRepo(testReservation(1, "AAAA1111")))

	_, err := svc.AdminUpdate(context.Background(), 1, &models.AdminUpdateReservationRequest{
		Date: ptr.Ptr("31/08/2026"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(testReservation(1, "AAAA1111"))
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deletedIDs)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrReservationNotFound)
}
