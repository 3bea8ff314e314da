package get_pending_requests

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// PendingRequestResponse HTTP response model
type PendingRequestResponse struct {
	RequestID     int64  `json:"requestId"`
	SlotID        int64  `json:"slotId"`
	SlotStartAt   string `json:"slotStartAt"`
	SlotEndAt     string `json:"slotEndAt"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CreatedAt     string `json:"createdAt"`
}

// ListPendingRequestsResponse HTTP response model
type ListPendingRequestsResponse struct {
	Requests []*PendingRequestResponse `json:"requests"`
}

// FromDomain конвертирует список ожидающих запросов в HTTP response
func FromDomain(requests []*domain.PendingRequest) *ListPendingRequestsResponse {
	resp := &ListPendingRequestsResponse{
		Requests: make([]*PendingRequestResponse, 0, len(requests)),
	}
	for _, pr := range requests {
		resp.Requests = append(resp.Requests, &PendingRequestResponse{
			RequestID:     pr.RequestID,
			SlotID:        pr.SlotID,
			SlotStartAt:   pr.SlotStartAt.Format(domain.TimestampFormat),
			SlotEndAt:     pr.SlotEndAt.Format(domain.TimestampFormat),
			CustomerName:  pr.CustomerName,
			CustomerEmail: pr.CustomerEmail,
			CreatedAt:     pr.CreatedAt.Format(domain.TimestampFormat),
		})
	}
	return resp
}
