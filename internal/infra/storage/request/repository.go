package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с запросами на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый запрос на бронирование.
// Частичный уникальный индекс (slot_id WHERE status = 'PENDING')
// гарантирует не более одного активного запроса на слот; нарушение
// транслируется в ErrActiveRequestExists.
func (r *Repository) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_requests").
		Columns("slot_id", "customer_name", "customer_email", "status", "created_at").
		Values(req.SlotID, req.CustomerName, req.CustomerEmail, req.Status, req.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrActiveRequestExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает запрос по ID с блокировкой строки (FOR UPDATE).
// Используется accept/decline внутри сериализуемой транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"slot_id",
		"customer_name",
		"customer_email",
		"status",
		"created_at",
		"decided_at",
	).
		From("booking_requests").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.BookingRequest
	var decidedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.SlotID,
		&req.CustomerName,
		&req.CustomerEmail,
		&req.Status,
		&req.CreatedAt,
		&decidedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan request: %v", ErrScanRow, err)
	}

	if decidedAt.Valid {
		req.DecidedAt = &decidedAt.Time
	}

	return &req, nil
}

// SetDecision фиксирует решение по запросу: новый статус и момент решения
func (r *Repository) SetDecision(ctx context.Context, id int64, status domain.RequestStatus, decidedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_requests").
		Set("status", status).
		Set("decided_at", decidedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetDecision - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetDecision - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetDecision - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// ListPendingByEmployee получает все PENDING-запросы по слотам сотрудника,
// отсортированные по времени начала слота
func (r *Repository) ListPendingByEmployee(ctx context.Context, employeeID int64) ([]*domain.PendingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"br.id",
		"br.slot_id",
		"s.start_at",
		"s.end_at",
		"br.customer_name",
		"br.customer_email",
		"br.created_at",
	).
		From("booking_requests br").
		Join("slots s ON s.id = br.slot_id").
		Where(squirrel.Eq{"br.status": domain.RequestStatusPending}).
		Where(squirrel.Eq{"s.employee_id": employeeID}).
		OrderBy("s.start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingByEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.PendingRequest, 0)
	for rows.Next() {
		var pr domain.PendingRequest
		err := rows.Scan(
			&pr.RequestID,
			&pr.SlotID,
			&pr.SlotStartAt,
			&pr.SlotEndAt,
			&pr.CustomerName,
			&pr.CustomerEmail,
			&pr.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPendingByEmployee - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, &pr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPendingByEmployee - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// DeleteByEmployeeSlots удаляет все запросы по всем слотам сотрудника
// одним set-based запросом. Вызывается из каскадного удаления сотрудника.
func (r *Repository) DeleteByEmployeeSlots(ctx context.Context, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_requests").
		Where(squirrel.Expr("slot_id IN (SELECT id FROM slots WHERE employee_id = ?)", employeeID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByEmployeeSlots - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByEmployeeSlots - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// isUniqueViolation проверяет ошибку на нарушение уникального констрейнта (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
