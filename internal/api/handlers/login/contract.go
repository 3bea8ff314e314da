package login

import "context"

type CredentialsService interface {
	Authenticate(ctx context.Context, username, password string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
