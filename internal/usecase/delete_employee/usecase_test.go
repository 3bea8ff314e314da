package delete_employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
	loginRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/login"
)

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
	deleted   []int64
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

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return employeeRepo.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// order фиксирует порядок каскадных удалений
type order struct {
	steps []string
}

type fakeSlotRepo struct {
	order *order
}

func (r *fakeSlotRepo) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	r.order.steps = append(r.order.steps, "slots")
	return nil
}

type fakeRequestRepo struct {
	order *order
}

func (r *fakeRequestRepo) DeleteByEmployeeSlots(ctx context.Context, employeeID int64) error {
	r.order.steps = append(r.order.steps, "requests")
	return nil
}

type fakeLoginRepo struct {
	order    *order
	notFound bool
}

func (r *fakeLoginRepo) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	r.order.steps = append(r.order.steps, "login")
	if r.notFound {
		return loginRepo.ErrLoginNotFound
	}
	return nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_CascadeOrder(t *testing.T) {
	ord := &order{}
	employees := newFakeEmployeeRepo(&domain.Employee{ID: 1, Name: "Анна"})
	tx := &fakeTxManager{}

	uc := NewUseCase(employees, &fakeSlotRepo{order: ord}, &fakeRequestRepo{order: ord}, &fakeLoginRepo{order: ord}, tx, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	// Запросы раньше слотов: они ссылаются на слоты
	assert.Equal(t, []string{"requests", "slots", "login"}, ord.steps)
	assert.Equal(t, []int64{1}, employees.deleted)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	ord := &order{}
	uc := NewUseCase(newFakeEmployeeRepo(), &fakeSlotRepo{order: ord}, &fakeRequestRepo{order: ord}, &fakeLoginRepo{order: ord}, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Empty(t, ord.steps)
}

func TestExecute_MissingLoginIsNotAnError(t *testing.T) {
	ord := &order{}
	employees := newFakeEmployeeRepo(&domain.Employee{ID: 1, Name: "Анна"})

	uc := NewUseCase(employees, &fakeSlotRepo{order: ord}, &fakeRequestRepo{order: ord}, &fakeLoginRepo{order: ord, notFound: true}, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, employees.deleted)
}

func TestExecute_InvalidID(t *testing.T) {
	ord := &order{}
	uc := NewUseCase(newFakeEmployeeRepo(), &fakeSlotRepo{order: ord}, &fakeRequestRepo{order: ord}, &fakeLoginRepo{order: ord}, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
