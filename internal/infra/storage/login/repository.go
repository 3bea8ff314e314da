package login

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с логинами сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория логинов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает логин сотрудника или перезаписывает существующий.
// На одного сотрудника всегда ровно один логин (констрейнт employee_id UNIQUE);
// конфликт по username другого сотрудника транслируется в ErrUsernameTaken.
func (r *Repository) Upsert(ctx context.Context, employeeID int64, username, passwordHash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employee_logins").
		Columns("employee_id", "username", "password_hash").
		Values(employeeID, username, passwordHash).
		Suffix("ON CONFLICT (employee_id) DO UPDATE SET username = EXCLUDED.username, password_hash = EXCLUDED.password_hash").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		// Конфликт по employee_id обработан через ON CONFLICT,
		// оставшееся нарушение уникальности — занятый username
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByUsername получает логин по нормализованному username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.EmployeeLogin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "employee_id", "username", "password_hash").
		From("employee_logins").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var l domain.EmployeeLogin
	err = executor.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.EmployeeID, &l.Username, &l.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrLoginNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan login: %v", ErrScanRow, err)
	}

	return &l, nil
}

// GetByEmployeeID получает логин сотрудника
func (r *Repository) GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.EmployeeLogin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "employee_id", "username", "password_hash").
		From("employee_logins").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - build select query: %v", ErrBuildQuery, err)
	}

	var l domain.EmployeeLogin
	err = executor.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.EmployeeID, &l.Username, &l.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrLoginNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - scan login: %v", ErrScanRow, err)
	}

	return &l, nil
}

// DeleteByEmployeeID удаляет логин сотрудника
func (r *Repository) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("employee_logins").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByEmployeeID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByEmployeeID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByEmployeeID - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrLoginNotFound
	}

	return nil
}

// List получает все логины вместе с именами сотрудников,
// отсортированные по имени сотрудника. Хеши паролей не возвращаются.
func (r *Repository) List(ctx context.Context) ([]*domain.LoginInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"e.id",
		"e.name",
		"l.username",
	).
		From("employee_logins l").
		Join("employees e ON e.id = l.employee_id").
		OrderBy("e.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	logins := make([]*domain.LoginInfo, 0)
	for rows.Next() {
		var info domain.LoginInfo
		if err := rows.Scan(&info.EmployeeID, &info.EmployeeName, &info.Username); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		logins = append(logins, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return logins, nil
}

// isUniqueViolation проверяет ошибку на нарушение уникального констрейнта (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
