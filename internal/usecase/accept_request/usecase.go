package accept_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	requestRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/request"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
)

// UseCase подтверждение запроса на бронирование сотрудником.
// Переводит запрос PENDING -> ACCEPTED и слот PENDING -> BOOKED
// атомарно, в одной сериализуемой транзакции.
type UseCase struct {
	requestRepo  RequestRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase подтверждения запроса
func NewUseCase(requestRepo RequestRepository, slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute подтверждает запрос на бронирование.
// Запрос и слот блокируются FOR UPDATE: повторное подтверждение или
// конкурирующий отказ увидит уже решенный запрос и вернет
// ErrRequestNotPending.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		bookingReq, err := uc.requestRepo.GetByIDForUpdate(ctx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: Execute - get request %d: %v", ErrInternal, req.RequestID, err)
		}

		if bookingReq.Status != domain.RequestStatusPending {
			return ErrRequestNotPending
		}

		s, err := uc.slotRepo.GetByIDForUpdate(ctx, bookingReq.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return fmt.Errorf("%w: Execute - slot %d missing for request %d", ErrInternal, bookingReq.SlotID, req.RequestID)
			}
			return fmt.Errorf("%w: Execute - get slot %d: %v", ErrInternal, bookingReq.SlotID, err)
		}

		if s.EmployeeID != req.EmployeeID {
			return ErrForbidden
		}

		// PENDING-запрос всегда идет в паре с PENDING-слотом;
		// расхождение означает поврежденное состояние
		if !s.IsPending() {
			return fmt.Errorf("%w: Execute - slot %d is %s while request %d is pending", ErrInternal, s.ID, s.Status, req.RequestID)
		}

		decidedAt := uc.timeProvider.Now()

		if err := uc.requestRepo.SetDecision(ctx, bookingReq.ID, domain.RequestStatusAccepted, decidedAt); err != nil {
			return fmt.Errorf("%w: Execute - set decision for request %d: %v", ErrInternal, bookingReq.ID, err)
		}

		if err := uc.slotRepo.UpdateStatus(ctx, s.ID, domain.SlotStatusBooked); err != nil {
			return fmt.Errorf("%w: Execute - update slot %d status: %v", ErrInternal, s.ID, err)
		}

		resp = &Response{
			RequestID:     bookingReq.ID,
			SlotID:        s.ID,
			SlotStatus:    domain.SlotStatusBooked,
			RequestStatus: domain.RequestStatusAccepted,
			DecidedAt:     decidedAt,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("accept_request: request %d accepted, slot %d booked", resp.RequestID, resp.SlotID)

	return resp, nil
}
