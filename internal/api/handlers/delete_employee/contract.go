package delete_employee

import "context"

type DeleteEmployeeUseCase interface {
	Execute(ctx context.Context, employeeID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
