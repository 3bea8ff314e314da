package request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос на бронирование не найден
	ErrRequestNotFound = errors.New("request.repository: booking request not found")

	// ErrActiveRequestExists возвращается, когда у слота уже есть активный
	// (PENDING) запрос — нарушение частичного уникального индекса
	ErrActiveRequestExists = errors.New("request.repository: slot already has an active request")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("request.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("request.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("request.repository: failed to scan row")
)
