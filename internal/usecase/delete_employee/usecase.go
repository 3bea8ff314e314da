package delete_employee

import (
	"context"
	"errors"
	"fmt"

	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
	loginRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/login"
)

// UseCase каскадное удаление сотрудника: запросы на бронирование,
// слоты, учетная запись и сама запись сотрудника удаляются в одной
// транзакции, в порядке зависимостей.
type UseCase struct {
	employeeRepo EmployeeRepository
	slotRepo     SlotRepository
	requestRepo  RequestRepository
	loginRepo    LoginRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase удаления сотрудника
func NewUseCase(
	employeeRepo EmployeeRepository,
	slotRepo SlotRepository,
	requestRepo RequestRepository,
	loginRepo LoginRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo: employeeRepo,
		slotRepo:     slotRepo,
		requestRepo:  requestRepo,
		loginRepo:    loginRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute удаляет сотрудника вместе со всеми связанными данными
func (uc *UseCase) Execute(ctx context.Context, employeeID int64) error {
	if employeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := uc.employeeRepo.GetByID(ctx, employeeID); err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("%w: Execute - get employee %d: %v", ErrInternal, employeeID, err)
		}

		// Сначала запросы (ссылаются на слоты), затем слоты
		if err := uc.requestRepo.DeleteByEmployeeSlots(ctx, employeeID); err != nil {
			return fmt.Errorf("%w: Execute - delete booking requests for employee %d: %v", ErrInternal, employeeID, err)
		}

		if err := uc.slotRepo.DeleteByEmployeeID(ctx, employeeID); err != nil {
			return fmt.Errorf("%w: Execute - delete slots for employee %d: %v", ErrInternal, employeeID, err)
		}

		// Учетной записи может не быть — это не ошибка
		if err := uc.loginRepo.DeleteByEmployeeID(ctx, employeeID); err != nil && !errors.Is(err, loginRepo.ErrLoginNotFound) {
			return fmt.Errorf("%w: Execute - delete login for employee %d: %v", ErrInternal, employeeID, err)
		}

		if err := uc.employeeRepo.Delete(ctx, employeeID); err != nil {
			return fmt.Errorf("%w: Execute - delete employee %d: %v", ErrInternal, employeeID, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("delete_employee: employee %d deleted with all slots, requests and login", employeeID)

	return nil
}
