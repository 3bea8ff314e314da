package decline_request

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модель запроса на отклонение бронирования
type Request struct {
	RequestID  int64 // ID запроса на бронирование
	EmployeeID int64 // ID сотрудника, принимающего решение
}

// Response модель ответа после отклонения
type Response struct {
	RequestID     int64                // ID запроса
	SlotID        int64                // ID слота
	SlotStatus    domain.SlotStatus    // Статус слота после решения (AVAILABLE)
	RequestStatus domain.RequestStatus // Статус запроса (DECLINED)
	DecidedAt     time.Time            // Момент решения
}
