// Package schedule read-side сервис расписания: слоты в диапазоне дат
// для календаря, ожидающие запросы сотрудника, слот по ID.
// Никогда не мутирует состояние.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
)

// Service сервис проекций расписания
type Service struct {
	slotRepo     SlotRepository
	requestRepo  RequestRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(slotRepo SlotRepository, requestRepo RequestRepository, logger Logger) *Service {
	return &Service{
		slotRepo:     slotRepo,
		requestRepo:  requestRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// FetchSlotsInRange возвращает слоты сотрудника, начинающиеся в окне
// [сегодня, сегодня + limitDays] включительно, по возрастанию start_at.
// Каждый слот аннотирован текущим запросом на бронирование, если он есть.
// limitDays вне диапазона заменяется дефолтом.
func (s *Service) FetchSlotsInRange(ctx context.Context, employeeID int64, limitDays int) ([]*domain.SlotWithRequest, error) {
	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}
	if limitDays < domain.MinLimitDays || limitDays > domain.MaxLimitDays {
		limitDays = domain.DefaultLimitDays
	}

	now := s.timeProvider.Now()
	from := startOfDay(now)
	// Верхняя граница эксклюзивная: конец последнего дня окна
	to := from.AddDate(0, 0, limitDays+1)

	slots, err := s.slotRepo.ListByEmployeeInRange(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("FetchSlotsInRange: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: FetchSlotsInRange - repository error: %v", ErrInternal, err)
	}

	return slots, nil
}

// FetchPendingRequests возвращает PENDING-запросы по слотам сотрудника,
// отсортированные по времени начала слота
func (s *Service) FetchPendingRequests(ctx context.Context, employeeID int64) ([]*domain.PendingRequest, error) {
	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	requests, err := s.requestRepo.ListPendingByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("FetchPendingRequests: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: FetchPendingRequests - repository error: %v", ErrInternal, err)
	}

	return requests, nil
}

// GetSlotByID возвращает слот по ID
func (s *Service) GetSlotByID(ctx context.Context, slotID int64) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetSlotByID: repository error for slot=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetSlotByID - repository error: %v", ErrInternal, err)
	}

	return slot, nil
}

// startOfDay обнуляет время, оставляя только дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
