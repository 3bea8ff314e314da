package create_employee

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// CreateEmployeeRequest HTTP request model
type CreateEmployeeRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// EmployeeResponse HTTP response model
type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:   e.ID,
		Name: e.Name,
	}
}
