// Package employees сервис реестра сотрудников: создание и список.
// Каскадное удаление вынесено в usecase delete_employee, так как требует
// транзакции через несколько репозиториев.
package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
)

// Service сервис реестра сотрудников
type Service struct {
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create создает сотрудника с уникальным именем.
// Имя обрезается; пустое имя и дубликат (точное, регистрозависимое
// совпадение) отклоняются.
func (s *Service) Create(ctx context.Context, name string) (*domain.Employee, error) {
	nameClean := strings.TrimSpace(name)
	if nameClean == "" {
		s.logger.Warn("Create: empty employee name rejected")
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if len(nameClean) > domain.MaxEmployeeNameLength {
		s.logger.Warn("Create: employee name too long (%d chars)", len(nameClean))
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	emp, err := s.employeeRepo.Create(ctx, nameClean)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeExists) {
			s.logger.Warn("Create: employee name %q already exists", nameClean)
			return nil, ErrEmployeeExists
		}
		s.logger.Error("Create: repository error for name %q: %v", nameClean, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: employee created id=%d name=%q", emp.ID, emp.Name)
	return emp, nil
}

// List возвращает всех сотрудников, отсортированных по имени
func (s *Service) List(ctx context.Context) ([]*domain.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return employees, nil
}
