package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	EmployeeID int64 `json:"employeeId"`
}
