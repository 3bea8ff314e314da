package employees

import "errors"

var (
	// ErrEmployeeExists возвращается, когда имя сотрудника уже занято
	ErrEmployeeExists = errors.New("employee already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("employees service: internal error")
)
