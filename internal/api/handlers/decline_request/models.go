package decline_request

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	declineRequest "github.com/m04kA/SMC-SchedulerService/internal/usecase/decline_request"
)

// DecisionResponse HTTP response model
type DecisionResponse struct {
	RequestID     int64  `json:"requestId"`
	SlotID        int64  `json:"slotId"`
	SlotStatus    string `json:"slotStatus"`
	RequestStatus string `json:"requestStatus"`
	DecidedAt     string `json:"decidedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *declineRequest.Response) *DecisionResponse {
	return &DecisionResponse{
		RequestID:     resp.RequestID,
		SlotID:        resp.SlotID,
		SlotStatus:    string(resp.SlotStatus),
		RequestStatus: string(resp.RequestStatus),
		DecidedAt:     resp.DecidedAt.Format(domain.TimestampFormat),
	}
}
