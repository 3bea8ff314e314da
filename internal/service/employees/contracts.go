package employees

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, name string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
