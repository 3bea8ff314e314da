package list_logins

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// LoginInfoResponse HTTP response model.
// Хеш пароля наружу не отдается.
type LoginInfoResponse struct {
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Username     string `json:"username"`
}

// ListLoginsResponse HTTP response model
type ListLoginsResponse struct {
	Logins []*LoginInfoResponse `json:"logins"`
}

// FromDomain конвертирует список логинов в HTTP response
func FromDomain(logins []*domain.LoginInfo) *ListLoginsResponse {
	resp := &ListLoginsResponse{
		Logins: make([]*LoginInfoResponse, 0, len(logins)),
	}
	for _, l := range logins {
		resp.Logins = append(resp.Logins, &LoginInfoResponse{
			EmployeeID:   l.EmployeeID,
			EmployeeName: l.EmployeeName,
			Username:     l.Username,
		})
	}
	return resp
}
