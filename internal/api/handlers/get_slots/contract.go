package get_slots

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type ScheduleService interface {
	FetchSlotsInRange(ctx context.Context, employeeID int64, limitDays int) ([]*domain.SlotWithRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
