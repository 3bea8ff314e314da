package request_slot

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID        int64  // ID слота
	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента (нормализуется: trim + lower-case)
}

// Response модель ответа с созданным запросом на бронирование
type Response struct {
	RequestID     int64                // ID созданного запроса
	SlotID        int64                // ID слота
	SlotStartAt   time.Time            // Начало слота
	SlotEndAt     time.Time            // Конец слота
	SlotStatus    domain.SlotStatus    // Статус слота после запроса (PENDING)
	RequestStatus domain.RequestStatus // Статус запроса (PENDING)
	CustomerName  string               // Имя клиента
	CustomerEmail string               // Нормализованный email клиента
	CreatedAt     time.Time            // Время создания запроса
}
