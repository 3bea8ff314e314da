package decline_request

import (
	"context"

	declineRequest "github.com/m04kA/SMC-SchedulerService/internal/usecase/decline_request"
)

type DeclineRequestUseCase interface {
	Execute(ctx context.Context, req *declineRequest.Request) (*declineRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
