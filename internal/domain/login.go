package domain

// EmployeeLogin holds the single optional credential record of an employee.
// Usernames are stored lower-cased and trimmed; the password is kept only
// as a salted one-way bcrypt hash.
type EmployeeLogin struct {
	ID           int64
	EmployeeID   int64
	Username     string
	PasswordHash string
}
