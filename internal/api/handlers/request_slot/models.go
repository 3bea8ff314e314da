package request_slot

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	requestSlot "github.com/m04kA/SMC-SchedulerService/internal/usecase/request_slot"
)

// RequestSlotRequest HTTP request model
type RequestSlotRequest struct {
	CustomerName  string `json:"customerName" validate:"required,max=200"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
}

// RequestSlotResponse HTTP response model
type RequestSlotResponse struct {
	RequestID     int64  `json:"requestId"`
	SlotID        int64  `json:"slotId"`
	SlotStartAt   string `json:"slotStartAt"`
	SlotEndAt     string `json:"slotEndAt"`
	SlotStatus    string `json:"slotStatus"`
	RequestStatus string `json:"requestStatus"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestSlotRequest) ToUseCaseRequest(slotID int64) *requestSlot.Request {
	return &requestSlot.Request{
		SlotID:        slotID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestSlot.Response) *RequestSlotResponse {
	return &RequestSlotResponse{
		RequestID:     resp.RequestID,
		SlotID:        resp.SlotID,
		SlotStartAt:   resp.SlotStartAt.Format(domain.TimestampFormat),
		SlotEndAt:     resp.SlotEndAt.Format(domain.TimestampFormat),
		SlotStatus:    string(resp.SlotStatus),
		RequestStatus: string(resp.RequestStatus),
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CreatedAt:     resp.CreatedAt.Format(domain.TimestampFormat),
	}
}
