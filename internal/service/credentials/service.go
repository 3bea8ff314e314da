// Package credentials сервис учетных данных сотрудников: создание/перезапись
// логина, аутентификация и удаление. Пароли хранятся только как bcrypt-хеши.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/employee"
	loginRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/login"
)

// Service сервис учетных данных
type Service struct {
	loginRepo    LoginRepository
	employeeRepo EmployeeRepository
	bcryptCost   int
	logger       Logger
}

// NewService создает новый экземпляр сервиса учетных данных.
// bcryptCost задает стоимость хеширования (из конфигурации).
func NewService(loginRepo LoginRepository, employeeRepo EmployeeRepository, bcryptCost int, logger Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		loginRepo:    loginRepo,
		employeeRepo: employeeRepo,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// SetLogin создает логин сотрудника или перезаписывает существующий.
// Username нормализуется (trim + lower-case); у сотрудника всегда
// не более одного логина.
func (s *Service) SetLogin(ctx context.Context, employeeID int64, username, password string) error {
	usernameClean := strings.ToLower(strings.TrimSpace(username))
	if usernameClean == "" {
		s.logger.Warn("SetLogin: empty username rejected for employee=%d", employeeID)
		return fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
	}
	if len(usernameClean) > domain.MaxUsernameLength {
		s.logger.Warn("SetLogin: username too long for employee=%d", employeeID)
		return fmt.Errorf("%w: username is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(password) == "" {
		s.logger.Warn("SetLogin: empty password rejected for employee=%d", employeeID)
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidInput)
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("SetLogin: employee id=%d not found", employeeID)
			return ErrEmployeeNotFound
		}
		s.logger.Error("SetLogin: failed to get employee id=%d: %v", employeeID, err)
		return fmt.Errorf("%w: SetLogin - repository error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error("SetLogin: failed to hash password for employee=%d: %v", employeeID, err)
		return fmt.Errorf("%w: SetLogin - hash password: %v", ErrInternal, err)
	}

	if err := s.loginRepo.Upsert(ctx, employeeID, usernameClean, string(hash)); err != nil {
		if errors.Is(err, loginRepo.ErrUsernameTaken) {
			s.logger.Warn("SetLogin: username %q already taken (employee=%d)", usernameClean, employeeID)
			return ErrUsernameTaken
		}
		s.logger.Error("SetLogin: repository error for employee=%d: %v", employeeID, err)
		return fmt.Errorf("%w: SetLogin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetLogin: login saved for employee=%d username=%q", employeeID, usernameClean)
	return nil
}

// Authenticate проверяет учетные данные и возвращает ID сотрудника.
// Неизвестный username и неверный пароль дают одну и ту же ошибку
// ErrInvalidCredentials; тайминговая разница не превышает ту, что
// дает само сравнение bcrypt.
func (s *Service) Authenticate(ctx context.Context, username, password string) (int64, error) {
	usernameClean := strings.ToLower(strings.TrimSpace(username))

	l, err := s.loginRepo.GetByUsername(ctx, usernameClean)
	if err != nil {
		if errors.Is(err, loginRepo.ErrLoginNotFound) {
			s.logger.Warn("Authenticate: unknown username %q", usernameClean)
			return 0, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for username=%q: %v", usernameClean, err)
		return 0, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for username=%q", usernameClean)
		return 0, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: employee=%d logged in", l.EmployeeID)
	return l.EmployeeID, nil
}

// DeleteLogin удаляет логин сотрудника
func (s *Service) DeleteLogin(ctx context.Context, employeeID int64) error {
	if err := s.loginRepo.DeleteByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, loginRepo.ErrLoginNotFound) {
			s.logger.Warn("DeleteLogin: no login for employee=%d", employeeID)
			return ErrLoginNotFound
		}
		s.logger.Error("DeleteLogin: repository error for employee=%d: %v", employeeID, err)
		return fmt.Errorf("%w: DeleteLogin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteLogin: login deleted for employee=%d", employeeID)
	return nil
}

// ListLogins возвращает пары "сотрудник + username" без хешей
func (s *Service) ListLogins(ctx context.Context) ([]*domain.LoginInfo, error) {
	logins, err := s.loginRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListLogins: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLogins - repository error: %v", ErrInternal, err)
	}
	return logins, nil
}
