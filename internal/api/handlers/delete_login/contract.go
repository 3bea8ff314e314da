package delete_login

import "context"

type CredentialsService interface {
	DeleteLogin(ctx context.Context, employeeID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
