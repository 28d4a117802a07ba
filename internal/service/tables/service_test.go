package tables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	tableRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/table"
	"github.com/cazingue/BMT-ReservationService/internal/service/tables/models"
	"github.com/cazingue/BMT-ReservationService/pkg/ptr"
)

var testNow = time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)

type fakeTableRepo struct {
	store       map[int64]*domain.Table
	nextID      int64
	numberTaken int // номер, занятый другим столом
	deletedIDs  []int64
}

func newFakeTableRepo(tables ...*domain.Table) *fakeTableRepo {
	store := make(map[int64]*domain.Table, len(tables))
	var maxID int64
	for _, t := range tables {
		store[t.ID] = t
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return &fakeTableRepo{store: store, nextID: maxID}
}

func (f *fakeTableRepo) Create(_ context.Context, t *domain.Table) (*domain.Table, error) {
	if f.numberTaken != 0 && t.Number == f.numberTaken {
		return nil, tableRepo.ErrDuplicateNumber
	}
	f.nextID++
	stored := *t
	stored.ID = f.nextID
	stored.CreatedAt = testNow
	stored.UpdatedAt = testNow
	f.store[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.store[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTableRepo) ListAll(_ context.Context) ([]*domain.Table, error) {
	result := make([]*domain.Table, 0, len(f.store))
	for _, t := range f.store {
		result = append(result, t)
	}
	return result, nil
}

func (f *fakeTableRepo) Update(_ context.Context, id int64, params tableRepo.UpdateParams) error {
	t, ok := f.store[id]
	if !ok {
		return tableRepo.ErrTableNotFound
	}
	if params.Number != nil {
		if f.numberTaken != 0 && *params.Number == f.numberTaken {
			return tableRepo.ErrDuplicateNumber
		}
		t.Number = *params.Number
	}
	if params.Capacity != nil {
		t.Capacity = *params.Capacity
	}
	if params.Status != nil {
		t.Status = *params.Status
	}
	if params.Description != nil {
		t.Description = *params.Description
	}
	return nil
}

func (f *fakeTableRepo) UpdateStatus(_ context.Context, id int64, status domain.TableStatus) error {
	t, ok := f.store[id]
	if !ok {
		return tableRepo.ErrTableNotFound
	}
	t.Status = status
	return nil
}

func (f *fakeTableRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store[id]; !ok {
		return tableRepo.ErrTableNotFound
	}
	delete(f.store, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeReservationRepo struct {
	blockingCount int
	countedTable  int64
	countedFrom   time.Time
}

func (f *fakeReservationRepo) CountBlockingFromDate(_ context.Context, tableID int64, from time.Time) (int, error) {
	f.countedTable = tableID
	f.countedFrom = from
	return f.blockingCount, nil
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

func newTestService(repo *fakeTableRepo, resRepo *fakeReservationRepo) *Service {
	if resRepo == nil {
		resRepo = &fakeReservationRepo{}
	}
	svc := NewService(repo, resRepo, nopLogger{})
	svc.timeProvider = &fixedClock{now: testNow}
	return svc
}

func TestCreate_DefaultsToAvailable(t *testing.T) {
	repo := newFakeTableRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), &models.CreateTableRequest{
		Number:   7,
		Capacity: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Number)
	assert.Equal(t, string(domain.TableAvailable), resp.Status)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateTableRequest
		wantErr error
	}{
		{"zero number", &models.CreateTableRequest{Number: 0, Capacity: 4}, ErrInvalidInput},
		{"zero capacity", &models.CreateTableRequest{Number: 1, Capacity: 0}, ErrInvalidInput},
		{"capacity too large", &models.CreateTableRequest{Number: 1, Capacity: domain.MaxTableCapacity + 1}, ErrInvalidInput},
		{"bad status", &models.CreateTableRequest{Number: 1, Capacity: 4, Status: "broken"}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeTableRepo(), nil)

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_DuplicateNumber(t *testing.T) {
	repo := newFakeTableRepo()
	repo.numberTaken = 7
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), &models.CreateTableRequest{Number: 7, Capacity: 4})
	assert.ErrorIs(t, err, ErrDuplicateNumber)
}

func TestUpdate(t *testing.T) {
	repo := newFakeTableRepo(&domain.Table{ID: 1, Number: 1, Capacity: 2, Status: domain.TableAvailable})
	svc := newTestService(repo, nil)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateTableRequest{
		Capacity:    ptr.Ptr(6),
		Description: ptr.Ptr("у окна"),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Capacity)
	assert.Equal(t, "у окна", resp.Description)
	assert.Equal(t, 1, resp.Number, "number is untouched")
}

func TestUpdate_Validation(t *testing.T) {
	repo := newFakeTableRepo(&domain.Table{ID: 1, Number: 1, Capacity: 2})
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), 1, &models.UpdateTableRequest{Number: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, &models.UpdateTableRequest{Capacity: ptr.Ptr(domain.MaxTableCapacity + 1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, &models.UpdateTableRequest{Status: ptr.Ptr("broken")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(context.Background(), 42, &models.UpdateTableRequest{Capacity: ptr.Ptr(4)})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeTableRepo(&domain.Table{ID: 1, Number: 1, Capacity: 2, Status: domain.TableAvailable})
	svc := newTestService(repo, nil)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateTableStatusRequest{Status: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, domain.TableMaintenance, repo.store[1].Status)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateTableStatusRequest{Status: "broken"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 42, &models.UpdateTableStatusRequest{Status: "occupied"})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := newFakeTableRepo(&domain.Table{ID: 1, Number: 1, Capacity: 2})
	resRepo := &fakeReservationRepo{}
	svc := newTestService(repo, resRepo)

	require.NoError(t, svc.Delete(context.Background(), 1))

	assert.Equal(t, []int64{1}, repo.deletedIDs)
	assert.Equal(t, int64(1), resRepo.countedTable)
	assert.Equal(t, testNow, resRepo.countedFrom)
}

func TestDelete_BlockedByFutureReservations(t *testing.T) {
	repo := newFakeTableRepo(&domain.Table{ID: 1, Number: 1, Capacity: 2})
	svc := newTestService(repo, &fakeReservationRepo{blockingCount: 2})

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrHasFutureReservations)
	assert.Empty(t, repo.deletedIDs)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newFakeTableRepo(), nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrTableNotFound)
}

func TestList(t *testing.T) {
	repo := newFakeTableRepo(
		&domain.Table{ID: 1, Number: 1, Capacity: 2},
		&domain.Table{ID: 2, Number: 2, Capacity: 4},
	)
	svc := newTestService(repo, nil)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Tables, 2)
}
