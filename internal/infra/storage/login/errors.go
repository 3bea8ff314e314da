package login

import "errors"

var (
	// ErrLoginNotFound возвращается, когда логин не найден
	ErrLoginNotFound = errors.New("login.repository: login not found")

	// ErrUsernameTaken возвращается, когда username уже занят другим сотрудником
	ErrUsernameTaken = errors.New("login.repository: username already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("login.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("login.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("login.repository: failed to scan row")
)
