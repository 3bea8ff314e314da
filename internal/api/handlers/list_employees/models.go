package list_employees

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// EmployeeResponse HTTP response model
type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListEmployeesResponse HTTP response model
type ListEmployeesResponse struct {
	Employees []*EmployeeResponse `json:"employees"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(employees []*domain.Employee) *ListEmployeesResponse {
	resp := &ListEmployeesResponse{
		Employees: make([]*EmployeeResponse, 0, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, &EmployeeResponse{
			ID:   e.ID,
			Name: e.Name,
		})
	}
	return resp
}
