package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
)

type fakeSlotRepo struct {
	slots    map[int64]*domain.Slot
	listFrom time.Time
	listTo   time.Time
	result   []*domain.SlotWithRequest
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

func (r *fakeSlotRepo) ListByEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.SlotWithRequest, error) {
	r.listFrom = from
	r.listTo = to
	return r.result, nil
}

type fakeRequestRepo struct {
	pending []*domain.PendingRequest
}

func (r *fakeRequestRepo) ListPendingByEmployee(ctx context.Context, employeeID int64) ([]*domain.PendingRequest, error) {
	return r.pending, nil
}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestFetchSlotsInRange_Window(t *testing.T) {
	slots := &fakeSlotRepo{}
	svc := NewService(slots, &fakeRequestRepo{}, nopLogger{})
	svc.timeProvider = &stubClock{now: time.Date(2025, 11, 3, 15, 42, 7, 0, time.UTC)}

	_, err := svc.FetchSlotsInRange(context.Background(), 1, 7)
	require.NoError(t, err)

	// Нижняя граница — начало текущего дня, верхняя — конец окна
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), slots.listFrom)
	assert.Equal(t, time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC), slots.listTo)
}

func TestFetchSlotsInRange_DefaultsOutOfRangeLimit(t *testing.T) {
	for _, days := range []int{-1, 0, 366} {
		slots := &fakeSlotRepo{}
		svc := NewService(slots, &fakeRequestRepo{}, nopLogger{})
		svc.timeProvider = &stubClock{now: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)}

		_, err := svc.FetchSlotsInRange(context.Background(), 1, days)
		require.NoError(t, err)

		expectedTo := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, domain.DefaultLimitDays+1)
		assert.Equal(t, expectedTo, slots.listTo, "days=%d", days)
	}
}

func TestFetchSlotsInRange_InvalidEmployee(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, &fakeRequestRepo{}, nopLogger{})

	_, err := svc.FetchSlotsInRange(context.Background(), 0, 7)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSlotByID(t *testing.T) {
	start := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		10: {ID: 10, EmployeeID: 1, StartAt: start, EndAt: start.Add(30 * time.Minute), Status: domain.SlotStatusAvailable},
	}}
	svc := NewService(slots, &fakeRequestRepo{}, nopLogger{})

	s, err := svc.GetSlotByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), s.ID)

	_, err = svc.GetSlotByID(context.Background(), 11)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
