package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertAvailable вставляет AVAILABLE-слот, если слота с таким
// (employee_id, start_at) еще нет. Возвращает true, если строка вставлена.
// ON CONFLICT DO NOTHING делает повторную генерацию идемпотентной:
// существующие слоты не трогаются и их статус не сбрасывается.
func (r *Repository) InsertAvailable(ctx context.Context, employeeID int64, startAt, endAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns("employee_id", "start_at", "end_at", "status").
		Values(employeeID, startAt, endAt, domain.SlotStatusAvailable).
		Suffix("ON CONFLICT (employee_id, start_at) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: InsertAvailable - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: InsertAvailable - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: InsertAvailable - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает слот по ID с блокировкой строки (FOR UPDATE).
// Используется машиной состояний внутри сериализуемой транзакции,
// чтобы конкурентные запросы на один слот выстраивались в очередь.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "employee_id", "start_at", "end_at", "status").
		From("slots").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.EmployeeID, &s.StartAt, &s.EndAt, &s.Status)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// UpdateStatus обновляет статус слота
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// ListByEmployeeInRange получает слоты сотрудника, начинающиеся в
// интервале [from, to), вместе с текущим запросом на бронирование
// (LEFT JOIN: слоты без запроса возвращаются с пустыми полями клиента).
// Текущим считается последний по created_at запрос слота — решённые
// запросы сохраняются как история.
func (r *Repository) ListByEmployeeInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]*domain.SlotWithRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.employee_id",
		"s.start_at",
		"s.end_at",
		"s.status",
		"br.customer_name",
		"br.customer_email",
		"br.status AS request_status",
	).
		From("slots s").
		LeftJoin(`booking_requests br ON br.id = (
			SELECT id FROM booking_requests
			WHERE slot_id = s.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		)`).
		Where(squirrel.Eq{"s.employee_id": employeeID}).
		Where(squirrel.GtOrEq{"s.start_at": from}).
		Where(squirrel.Lt{"s.start_at": to}).
		OrderBy("s.start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.SlotWithRequest, 0)
	for rows.Next() {
		var s domain.SlotWithRequest
		var customerName, customerEmail, requestStatus sql.NullString

		err := rows.Scan(
			&s.ID,
			&s.EmployeeID,
			&s.StartAt,
			&s.EndAt,
			&s.Status,
			&customerName,
			&customerEmail,
			&requestStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEmployeeInRange - scan row: %v", ErrScanRow, err)
		}

		if customerName.Valid {
			s.CustomerName = ptr.Ptr(customerName.String)
		}
		if customerEmail.Valid {
			s.CustomerEmail = ptr.Ptr(customerEmail.String)
		}
		if requestStatus.Valid {
			s.RequestStatus = ptr.Ptr(domain.RequestStatus(requestStatus.String))
		}

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeInRange - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// DeleteByEmployeeID удаляет все слоты сотрудника одним запросом.
// Вызывается только из каскадного удаления сотрудника, после удаления
// запросов на бронирование.
func (r *Repository) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByEmployeeID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByEmployeeID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
