package list_logins

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type CredentialsService interface {
	ListLogins(ctx context.Context) ([]*domain.LoginInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
