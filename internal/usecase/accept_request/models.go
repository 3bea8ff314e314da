package accept_request

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	RequestID  int64 // ID запроса на бронирование
	EmployeeID int64 // ID сотрудника, принимающего решение
}

// Response модель ответа после подтверждения
type Response struct {
	RequestID     int64                // ID запроса
	SlotID        int64                // ID слота
	SlotStatus    domain.SlotStatus    // Статус слота после решения (BOOKED)
	RequestStatus domain.RequestStatus // Статус запроса (ACCEPTED)
	DecidedAt     time.Time            // Момент решения
}
