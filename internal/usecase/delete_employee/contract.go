package delete_employee

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	DeleteByEmployeeID(ctx context.Context, employeeID int64) error
}

// RequestRepository интерфейс репозитория запросов на бронирование
type RequestRepository interface {
	DeleteByEmployeeSlots(ctx context.Context, employeeID int64) error
}

// LoginRepository интерфейс репозитория учетных записей
type LoginRepository interface {
	DeleteByEmployeeID(ctx context.Context, employeeID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
