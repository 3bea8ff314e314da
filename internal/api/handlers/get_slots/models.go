package get_slots

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// SlotResponse HTTP response model.
// Поля клиента заполнены только у слотов с запросом на бронирование.
type SlotResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employeeId"`
	StartAt       string  `json:"startAt"`
	EndAt         string  `json:"endAt"`
	Status        string  `json:"status"`
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	RequestStatus *string `json:"requestStatus,omitempty"`
}

// ListSlotsResponse HTTP response model
type ListSlotsResponse struct {
	Slots []*SlotResponse `json:"slots"`
}

// FromDomain конвертирует список слотов с запросами в HTTP response
func FromDomain(slots []*domain.SlotWithRequest) *ListSlotsResponse {
	resp := &ListSlotsResponse{
		Slots: make([]*SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		sr := &SlotResponse{
			ID:            s.ID,
			EmployeeID:    s.EmployeeID,
			StartAt:       s.StartAt.Format(domain.TimestampFormat),
			EndAt:         s.EndAt.Format(domain.TimestampFormat),
			Status:        string(s.Status),
			CustomerName:  s.CustomerName,
			CustomerEmail: s.CustomerEmail,
		}
		if s.RequestStatus != nil {
			status := string(*s.RequestStatus)
			sr.RequestStatus = &status
		}
		resp.Slots = append(resp.Slots, sr)
	}
	return resp
}
