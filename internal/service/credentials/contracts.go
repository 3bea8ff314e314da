package credentials

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// LoginRepository интерфейс репозитория логинов
type LoginRepository interface {
	Upsert(ctx context.Context, employeeID int64, username, passwordHash string) error
	GetByUsername(ctx context.Context, username string) (*domain.EmployeeLogin, error)
	DeleteByEmployeeID(ctx context.Context, employeeID int64) error
	List(ctx context.Context) ([]*domain.LoginInfo, error)
}

// EmployeeRepository интерфейс репозитория сотрудников (проверка существования)
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
