package accept_request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос не найден
	ErrRequestNotFound = errors.New("accept_request: booking request not found")

	// ErrRequestNotPending возвращается, когда запрос уже решен
	ErrRequestNotPending = errors.New("accept_request: booking request is not pending")

	// ErrForbidden возвращается, когда запрос относится к слоту другого сотрудника
	ErrForbidden = errors.New("accept_request: request belongs to another employee")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accept_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_request: internal error")
)
