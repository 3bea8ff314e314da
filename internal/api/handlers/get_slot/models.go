package get_slot

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// SlotResponse HTTP response model
type SlotResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employeeId"`
	StartAt    string `json:"startAt"`
	EndAt      string `json:"endAt"`
	Status     string `json:"status"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		StartAt:    s.StartAt.Format(domain.TimestampFormat),
		EndAt:      s.EndAt.Format(domain.TimestampFormat),
		Status:     string(s.Status),
	}
}
