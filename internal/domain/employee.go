package domain

// Employee represents an employee offering bookable time slots
type Employee struct {
	ID   int64
	Name string
}

// LoginInfo is a read model pairing an employee with their login username.
// Password hashes are never part of this projection.
type LoginInfo struct {
	EmployeeID   int64
	EmployeeName string
	Username     string
}
