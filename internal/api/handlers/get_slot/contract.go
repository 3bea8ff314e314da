package get_slot

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

type ScheduleService interface {
	GetSlotByID(ctx context.Context, slotID int64) (*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
