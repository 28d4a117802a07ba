package timeslots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	timeslotRepo "github.com/cazingue/BMT-ReservationService/internal/infra/storage/timeslot"
	"github.com/cazingue/BMT-ReservationService/internal/service/timeslots/models"
	"github.com/cazingue/BMT-ReservationService/pkg/ptr"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

type fakeSlotRepo struct {
	store      map[int64]*domain.TimeSlot
	nextID     int64
	startTaken types.TimeString // время начала, занятое другим слотом
	deletedIDs []int64
}

func newFakeSlotRepo(slots ...*domain.TimeSlot) *fakeSlotRepo {
	store := make(map[int64]*domain.TimeSlot, len(slots))
	var maxID int64
	for _, s := range slots {
		store[s.ID] = s
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return &fakeSlotRepo{store: store, nextID: maxID}
}

func (f *fakeSlotRepo) Create(_ context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	if f.startTaken != "" && s.StartTime == f.startTaken {
		return nil, timeslotRepo.ErrDuplicateSlot
	}
	f.nextID++
	stored := *s
	stored.ID = f.nextID
	f.store[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	s, ok := f.store[id]
	if !ok {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotRepo) ListAll(_ context.Context) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0, len(f.store))
	for _, s := range f.store {
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeSlotRepo) ListActive(_ context.Context) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0, len(f.store))
	for _, s := range f.store {
		if s.IsActive {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeSlotRepo) ListLunch(_ context.Context) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0, len(f.store))
	for _, s := range f.store {
		if s.IsActive && s.IsLunch {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeSlotRepo) ListDinner(_ context.Context) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0, len(f.store))
	for _, s := range f.store {
		if s.IsActive && s.IsDinner {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeSlotRepo) Update(_ context.Context, s *domain.TimeSlot) error {
	if _, ok := f.store[s.ID]; !ok {
		return timeslotRepo.ErrSlotNotFound
	}
	if f.startTaken != "" && s.StartTime == f.startTaken {
		return timeslotRepo.ErrDuplicateSlot
	}
	copied := *s
	f.store[s.ID] = &copied
	return nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store[id]; !ok {
		return timeslotRepo.ErrSlotNotFound
	}
	delete(f.store, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func lunchSlot(id int64, start, end types.TimeString) *domain.TimeSlot {
	return &domain.TimeSlot{ID: id, StartTime: start, EndTime: end, IsLunch: true, IsActive: true}
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateTimeSlotRequest{
		StartTime: "12:30",
		EndTime:   "14:30",
		IsLunch:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "12:30", resp.StartTime)
	assert.Equal(t, "14:30", resp.EndTime)
	assert.True(t, resp.IsActive, "slots are active by default")
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateTimeSlotRequest
	}{
		{"bad start format", &models.CreateTimeSlotRequest{StartTime: "noon", EndTime: "14:30", IsLunch: true}},
		{"bad end format", &models.CreateTimeSlotRequest{StartTime: "12:30", EndTime: "25:00", IsLunch: true}},
		{"start after end", &models.CreateTimeSlotRequest{StartTime: "14:30", EndTime: "12:30", IsLunch: true}},
		{"start equals end", &models.CreateTimeSlotRequest{StartTime: "12:30", EndTime: "12:30", IsLunch: true}},
		{"neither lunch nor dinner", &models.CreateTimeSlotRequest{StartTime: "12:30", EndTime: "14:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeSlotRepo(), nopLogger{})

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_DuplicateStartTime(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.startTaken = "12:30"
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateTimeSlotRequest{
		StartTime: "12:30",
		EndTime:   "14:30",
		IsLunch:   true,
	})
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestList_ActiveOnlyByDefault(t *testing.T) {
	inactive := lunchSlot(2, "13:00", "15:00")
	inactive.IsActive = false
	repo := newFakeSlotRepo(lunchSlot(1, "12:30", "14:30"), inactive)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)

	resp, err = svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

func TestList_GroupsByService(t *testing.T) {
	dinner := &domain.TimeSlot{ID: 2, StartTime: "19:00", EndTime: "21:00", IsDinner: true, IsActive: true}
	repo := newFakeSlotRepo(lunchSlot(1, "12:30", "14:30"), dinner)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, resp.Lunch, 1)
	require.Len(t, resp.Dinner, 1)
	assert.Equal(t, "12:30", resp.Lunch[0].StartTime)
	assert.Equal(t, "19:00", resp.Dinner[0].StartTime)
}

func TestListLunchAndDinner(t *testing.T) {
	dinner := &domain.TimeSlot{ID: 2, StartTime: "19:00", EndTime: "21:00", IsDinner: true, IsActive: true}
	inactiveDinner := &domain.TimeSlot{ID: 3, StartTime: "20:00", EndTime: "22:00", IsDinner: true}
	repo := newFakeSlotRepo(lunchSlot(1, "12:30", "14:30"), dinner, inactiveDinner)
	svc := NewService(repo, nopLogger{})

	lunch, err := svc.ListLunch(context.Background())
	require.NoError(t, err)
	require.Len(t, lunch.Lunch, 1)
	assert.Empty(t, lunch.Dinner)

	dinners, err := svc.ListDinner(context.Background())
	require.NoError(t, err)
	require.Len(t, dinners.Dinner, 1)
	assert.Equal(t, "19:00", dinners.Dinner[0].StartTime, "inactive slots are excluded")
}

func TestUpdate_Success(t *testing.T) {
	repo := newFakeSlotRepo(lunchSlot(1, "12:30", "14:30"))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateTimeSlotRequest{
		StartTime: ptr.Ptr("13:00"),
		EndTime:   ptr.Ptr("15:00"),
		IsActive:  ptr.Ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "13:00", resp.StartTime)
	assert.Equal(t, "15:00", resp.EndTime)
	assert.False(t, resp.IsActive)
	assert.True(t, resp.IsLunch, "service flag is untouched")
}

func TestUpdate_RevalidatesCombinedState(t *testing.T) {
	repo := newFakeSlotRepo(lunchSlot(1, "12:30", "14:30"))
	svc := NewService(repo, nopLogger{})

	// Новое начало позже существующего конца
	_, err := svc.Update(context.Background(), 1, &models.UpdateTimeSlotRequest{
		StartTime: ptr.Ptr("15:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Снятие единственного флага сервиса
	_, err = svc.Update(context.Background(), 1, &models.UpdateTimeSlotRequest{
		IsLunch: ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeSlotRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 42, &models.UpdateTimeSlotRequest{
		IsActive: ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeSlotRepo(lunchSlot(1, "12:30", "14:30"))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deletedIDs)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrSlotNotFound)
}
