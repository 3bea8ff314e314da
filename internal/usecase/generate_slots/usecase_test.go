package generate_slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
}

func newFakeEmployeeRepo(employees ...*domain.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[int64]*domain.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return e, nil
}

// fakeSlotRepo имитирует ON CONFLICT DO NOTHING по ключу (employee_id, start_at)
type fakeSlotRepo struct {
	inserted map[string]bool
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{inserted: make(map[string]bool)}
}

func (r *fakeSlotRepo) InsertAvailable(ctx context.Context, employeeID int64, startAt, endAt time.Time) (bool, error) {
	key := fmt.Sprintf("%d|%s", employeeID, startAt.Format(time.RFC3339))
	if r.inserted[key] {
		return false, nil
	}
	r.inserted[key] = true
	return true, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(slots *fakeSlotRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		newFakeEmployeeRepo(&domain.Employee{ID: 1, Name: "Анна"}),
		slots,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &stubClock{now: now}
	return uc
}

// 2025-11-03 — понедельник
var monday = time.Date(2025, 11, 3, 15, 30, 0, 0, time.UTC)

func TestExecute_GeneratesWorkingDay(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(slots, monday)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:   1,
		DaysAhead:    1,
		SlotMinutes:  30,
		WorkStart:    types.TimeString("09:00"),
		WorkEnd:      types.TimeString("17:00"),
		WeekdaysOnly: true,
	})
	require.NoError(t, err)

	// 8 часов по 30 минут = 16 слотов
	assert.Equal(t, 16, resp.Created)
	assert.Equal(t, 0, resp.Skipped)
}

func TestExecute_Idempotent(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(slots, monday)

	req := &Request{
		EmployeeID:   1,
		DaysAhead:    5,
		SlotMinutes:  60,
		WorkStart:    types.TimeString("09:00"),
		WorkEnd:      types.TimeString("17:00"),
		WeekdaysOnly: true,
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 40, first.Created)

	// Повторная генерация не создает дублей
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 40, second.Skipped)
}

func TestExecute_SkipsWeekends(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(slots, monday)

	// Неделя с понедельника: 5 рабочих дней из 7
	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:   1,
		DaysAhead:    7,
		SlotMinutes:  60,
		WorkStart:    types.TimeString("10:00"),
		WorkEnd:      types.TimeString("12:00"),
		WeekdaysOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Created)
}

func TestExecute_IncludesWeekendsWhenDisabled(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(slots, monday)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:   1,
		DaysAhead:    7,
		SlotMinutes:  60,
		WorkStart:    types.TimeString("10:00"),
		WorkEnd:      types.TimeString("12:00"),
		WeekdaysOnly: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 14, resp.Created)
}

func TestExecute_DropsTrailingPartialSlot(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(slots, monday)

	// 09:00-10:15 при шаге 30 минут: последний интервал 10:00-10:30
	// вышел бы за границу и отбрасывается
	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:   1,
		DaysAhead:    1,
		SlotMinutes:  30,
		WorkStart:    types.TimeString("09:00"),
		WorkEnd:      types.TimeString("10:15"),
		WeekdaysOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Created)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	uc := NewUseCase(newFakeEmployeeRepo(), newFakeSlotRepo(), fakeTxManager{}, nopLogger{})
	uc.timeProvider = &stubClock{now: monday}

	_, err := uc.Execute(context.Background(), &Request{
		EmployeeID:  42,
		DaysAhead:   1,
		SlotMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_AppliesDefaults(t *testing.T) {
	slots := newFakeSlotRepo()
	uc := newTestUseCase(slots, monday)

	// Пустые параметры: 14 дней, 30 минут, 09:00-17:00, без выходных
	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: 1, WeekdaysOnly: true})
	require.NoError(t, err)

	// 03.11.2025 - 16.11.2025: 10 рабочих дней по 16 слотов
	assert.Equal(t, 160, resp.Created)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(newFakeSlotRepo(), monday)

	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"zero employee", &Request{EmployeeID: 0}},
		{"daysAhead too big", &Request{EmployeeID: 1, DaysAhead: 366}},
		{"slotMinutes too small", &Request{EmployeeID: 1, SlotMinutes: 4}},
		{"slotMinutes too big", &Request{EmployeeID: 1, SlotMinutes: 481}},
		{"start after end", &Request{EmployeeID: 1, WorkStart: types.TimeString("18:00"), WorkEnd: types.TimeString("09:00")}},
		{"start equals end", &Request{EmployeeID: 1, WorkStart: types.TimeString("09:00"), WorkEnd: types.TimeString("09:00")}},
		{"malformed time", &Request{EmployeeID: 1, WorkStart: types.TimeString("9am"), WorkEnd: types.TimeString("17:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
