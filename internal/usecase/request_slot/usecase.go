package request_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	requestRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/request"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
)

// UseCase запрос клиента на бронирование слота.
// Переводит слот AVAILABLE -> PENDING и создает запрос на бронирование
// атомарно, в одной сериализуемой транзакции.
type UseCase struct {
	slotRepo     SlotRepository
	requestRepo  RequestRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase запроса на бронирование
func NewUseCase(slotRepo SlotRepository, requestRepo RequestRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		requestRepo:  requestRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute обрабатывает запрос на бронирование слота.
// Из двух конкурентных запросов на один слот ровно один получает PENDING,
// второй завершается ErrSlotNotAvailable: слот блокируется FOR UPDATE,
// и статус проверяется уже под блокировкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		s, err := uc.slotRepo.GetByIDForUpdate(ctx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Execute - get slot %d: %v", ErrInternal, req.SlotID, err)
		}

		if !s.IsAvailable() {
			uc.logger.Info("request_slot: slot %d is %s, rejecting request from %s", s.ID, s.Status, req.CustomerEmail)
			return ErrSlotNotAvailable
		}

		if err := uc.slotRepo.UpdateStatus(ctx, s.ID, domain.SlotStatusPending); err != nil {
			return fmt.Errorf("%w: Execute - update slot %d status: %v", ErrInternal, s.ID, err)
		}

		bookingReq := &domain.BookingRequest{
			SlotID:        s.ID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Status:        domain.RequestStatusPending,
			CreatedAt:     uc.timeProvider.Now(),
		}

		created, err := uc.requestRepo.Create(ctx, bookingReq)
		if err != nil {
			// Страховка на случай гонки, не перехваченной блокировкой:
			// частичный уникальный индекс по PENDING-запросам
			if errors.Is(err, requestRepo.ErrActiveRequestExists) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: Execute - create booking request for slot %d: %v", ErrInternal, s.ID, err)
		}

		resp = &Response{
			RequestID:     created.ID,
			SlotID:        s.ID,
			SlotStartAt:   s.StartAt,
			SlotEndAt:     s.EndAt,
			SlotStatus:    domain.SlotStatusPending,
			RequestStatus: created.Status,
			CustomerName:  created.CustomerName,
			CustomerEmail: created.CustomerEmail,
			CreatedAt:     created.CreatedAt,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("request_slot: created request %d for slot %d (customer=%s)", resp.RequestID, resp.SlotID, resp.CustomerEmail)

	return resp, nil
}
