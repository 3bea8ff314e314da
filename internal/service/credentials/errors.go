package credentials

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("credentials: employee not found")

	// ErrLoginNotFound возвращается, когда у сотрудника нет логина
	ErrLoginNotFound = errors.New("credentials: login not found")

	// ErrUsernameTaken возвращается, когда username занят другим сотрудником
	ErrUsernameTaken = errors.New("credentials: username already taken")

	// ErrInvalidCredentials возвращается при неверном username или пароле.
	// Единая ошибка для обоих случаев: ответ не раскрывает, существует ли username.
	ErrInvalidCredentials = errors.New("credentials: invalid username or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("credentials: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("credentials: internal error")
)
