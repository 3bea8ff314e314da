package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
)

// UseCase генерация AVAILABLE-слотов для сотрудника на горизонт вперед.
// Повторный запуск идемпотентен: существующие слоты (включая PENDING
// и BOOKED) не пересоздаются и их статус не меняется.
type UseCase struct {
	employeeRepo EmployeeRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase генерации слотов
func NewUseCase(employeeRepo EmployeeRepository, slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		employeeRepo: employeeRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute генерирует слоты по рабочему расписанию.
// Вся партия вставляется в одной транзакции: либо окно сгенерировано
// целиком, либо не изменилось вовсе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("%w: Execute - get employee %d: %v", ErrInternal, req.EmployeeID, err)
	}

	today := startOfDay(uc.timeProvider.Now())

	intervals, err := buildIntervals(today, req.DaysAhead, req.SlotMinutes, req.WorkStart, req.WorkEnd, req.WeekdaysOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &Response{EmployeeID: req.EmployeeID}

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		for _, iv := range intervals {
			inserted, err := uc.slotRepo.InsertAvailable(ctx, req.EmployeeID, iv.startAt, iv.endAt)
			if err != nil {
				return fmt.Errorf("%w: Execute - insert slot %s: %v", ErrInternal, iv.startAt, err)
			}
			if inserted {
				resp.Created++
			} else {
				resp.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("generate_slots: employee=%d created=%d skipped=%d (days=%d, slot=%dm, %s-%s)",
		req.EmployeeID, resp.Created, resp.Skipped, req.DaysAhead, req.SlotMinutes, req.WorkStart, req.WorkEnd)

	return resp, nil
}

// startOfDay обнуляет время, оставляя только дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
