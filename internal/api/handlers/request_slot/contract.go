package request_slot

import (
	"context"

	requestSlot "github.com/m04kA/SMC-SchedulerService/internal/usecase/request_slot"
)

type RequestSlotUseCase interface {
	Execute(ctx context.Context, req *requestSlot.Request) (*requestSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
