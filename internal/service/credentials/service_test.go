package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
	loginRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/login"
)

type fakeLoginRepo struct {
	byEmployee map[int64]*domain.EmployeeLogin
	byUsername map[string]*domain.EmployeeLogin
	taken      map[string]bool
}

func newFakeLoginRepo() *fakeLoginRepo {
	return &fakeLoginRepo{
		byEmployee: make(map[int64]*domain.EmployeeLogin),
		byUsername: make(map[string]*domain.EmployeeLogin),
		taken:      make(map[string]bool),
	}
}

func (r *fakeLoginRepo) Upsert(ctx context.Context, employeeID int64, username, passwordHash string) error {
	if existing, ok := r.byUsername[username]; ok && existing.EmployeeID != employeeID {
		return loginRepo.ErrUsernameTaken
	}
	if old, ok := r.byEmployee[employeeID]; ok {
		delete(r.byUsername, old.Username)
	}
	l := &domain.EmployeeLogin{EmployeeID: employeeID, Username: username, PasswordHash: passwordHash}
	r.byEmployee[employeeID] = l
	r.byUsername[username] = l
	return nil
}

func (r *fakeLoginRepo) GetByUsername(ctx context.Context, username string) (*domain.EmployeeLogin, error) {
	l, ok := r.byUsername[username]
	if !ok {
		return nil, loginRepo.ErrLoginNotFound
	}
	return l, nil
}

func (r *fakeLoginRepo) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	l, ok := r.byEmployee[employeeID]
	if !ok {
		return loginRepo.ErrLoginNotFound
	}
	delete(r.byUsername, l.Username)
	delete(r.byEmployee, employeeID)
	return nil
}

func (r *fakeLoginRepo) List(ctx context.Context) ([]*domain.LoginInfo, error) {
	infos := make([]*domain.LoginInfo, 0, len(r.byEmployee))
	for _, l := range r.byEmployee {
		infos = append(infos, &domain.LoginInfo{EmployeeID: l.EmployeeID, Username: l.Username})
	}
	return infos, nil
}

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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// bcrypt.MinCost, чтобы тесты не тратили время на хеширование
func newTestService(logins *fakeLoginRepo, employees *fakeEmployeeRepo) *Service {
	return NewService(logins, employees, bcrypt.MinCost, nopLogger{})
}

func TestSetLogin_NormalizesUsername(t *testing.T) {
	logins := newFakeLoginRepo()
	svc := newTestService(logins, newFakeEmployeeRepo(&domain.Employee{ID: 1, Name: "Анна"}))

	err := svc.SetLogin(context.Background(), 1, "  Anna.Ivanova  ", "secret")
	require.NoError(t, err)

	l, ok := logins.byUsername["anna.ivanova"]
	require.True(t, ok)
	assert.Equal(t, int64(1), l.EmployeeID)

	// Пароль не хранится в открытом виде
	assert.NotEqual(t, "secret", l.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte("secret")))
}

func TestSetLogin_OverwritesExisting(t *testing.T) {
	logins := newFakeLoginRepo()
	svc := newTestService(logins, newFakeEmployeeRepo(&domain.Employee{ID: 1, Name: "Анна"}))

	require.NoError(t, svc.SetLogin(context.Background(), 1, "anna", "old-pass"))
	require.NoError(t, svc.SetLogin(context.Background(), 1, "anna.new", "new-pass"))

	// Старый username освобожден, действует только новый
	_, err := svc.Authenticate(context.Background(), "anna", "old-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	id, err := svc.Authenticate(context.Background(), "anna.new", "new-pass")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestSetLogin_UsernameTakenCaseInsensitive(t *testing.T) {
	logins := newFakeLoginRepo()
	employees := newFakeEmployeeRepo(
		&domain.Employee{ID: 1, Name: "Анна"},
		&domain.Employee{ID: 2, Name: "Борис"},
	)
	svc := newTestService(logins, employees)

	require.NoError(t, svc.SetLogin(context.Background(), 1, "anna", "secret"))

	// Регистр не создает нового username
	err := svc.SetLogin(context.Background(), 2, "ANNA", "another")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSetLogin_EmployeeNotFound(t *testing.T) {
	svc := newTestService(newFakeLoginRepo(), newFakeEmployeeRepo())

	err := svc.SetLogin(context.Background(), 42, "anna", "secret")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestSetLogin_Validation(t *testing.T) {
	svc := newTestService(newFakeLoginRepo(), newFakeEmployeeRepo(&domain.Employee{ID: 1, Name: "Анна"}))

	assert.ErrorIs(t, svc.SetLogin(context.Background(), 1, "   ", "secret"), ErrInvalidInput)
	assert.ErrorIs(t, svc.SetLogin(context.Background(), 1, "anna", "   "), ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	logins := newFakeLoginRepo()
	svc := newTestService(logins, newFakeEmployeeRepo(&domain.Employee{ID: 7, Name: "Анна"}))
	require.NoError(t, svc.SetLogin(context.Background(), 7, "anna", "correct-horse"))

	t.Run("success", func(t *testing.T) {
		id, err := svc.Authenticate(context.Background(), "anna", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("case-insensitive username", func(t *testing.T) {
		id, err := svc.Authenticate(context.Background(), "  ANNA  ", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "anna", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestDeleteLogin(t *testing.T) {
	logins := newFakeLoginRepo()
	svc := newTestService(logins, newFakeEmployeeRepo(&domain.Employee{ID: 1, Name: "Анна"}))
	require.NoError(t, svc.SetLogin(context.Background(), 1, "anna", "secret"))

	require.NoError(t, svc.DeleteLogin(context.Background(), 1))

	_, err := svc.Authenticate(context.Background(), "anna", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Повторное удаление: логина уже нет
	assert.ErrorIs(t, svc.DeleteLogin(context.Background(), 1), ErrLoginNotFound)
}
