package request_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("request_slot: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже не AVAILABLE:
	// его успел занять другой клиент или он уже забронирован
	ErrSlotNotAvailable = errors.New("request_slot: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_slot: internal error")
)
