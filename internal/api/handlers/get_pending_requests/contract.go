package get_pending_requests

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type ScheduleService interface {
	FetchPendingRequests(ctx context.Context, employeeID int64) ([]*domain.PendingRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
