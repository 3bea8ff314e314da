package create_employee

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type EmployeesService interface {
	Create(ctx context.Context, name string) (*domain.Employee, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
