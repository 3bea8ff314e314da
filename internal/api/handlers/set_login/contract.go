package set_login

import "context"

type CredentialsService interface {
	SetLogin(ctx context.Context, employeeID int64, username, password string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
