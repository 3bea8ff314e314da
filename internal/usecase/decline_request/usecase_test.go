package decline_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	requestRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/request"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
)

type fakeRequestRepo struct {
	requests map[int64]*domain.BookingRequest
}

func newFakeRequestRepo(requests ...*domain.BookingRequest) *fakeRequestRepo {
	r := &fakeRequestRepo{requests: make(map[int64]*domain.BookingRequest)}
	for _, req := range requests {
		r.requests[req.ID] = req
	}
	return r
}

func (r *fakeRequestRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (r *fakeRequestRepo) SetDecision(ctx context.Context, id int64, status domain.RequestStatus, decidedAt time.Time) error {
	req, ok := r.requests[id]
	if !ok {
		return requestRepo.ErrRequestNotFound
	}
	req.Status = status
	req.DecidedAt = &decidedAt
	return nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[int64]*domain.Slot)}
	for _, s := range slots {
		r.slots[s.ID] = s
	}
	return r
}

func (r *fakeSlotRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSlotRepo) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.Status = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingPair() (*domain.BookingRequest, *domain.Slot) {
	start := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	slot := &domain.Slot{
		ID:         10,
		EmployeeID: 1,
		StartAt:    start,
		EndAt:      start.Add(30 * time.Minute),
		Status:     domain.SlotStatusPending,
	}
	req := &domain.BookingRequest{
		ID:            100,
		SlotID:        10,
		CustomerName:  "Анна",
		CustomerEmail: "anna@example.com",
		Status:        domain.RequestStatusPending,
		CreatedAt:     start.Add(-24 * time.Hour),
	}
	return req, slot
}

func TestExecute_Success(t *testing.T) {
	req, slot := pendingPair()
	requests := newFakeRequestRepo(req)
	slots := newFakeSlotRepo(slot)
	now := time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)

	uc := NewUseCase(requests, slots, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &stubClock{now: now}

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 100, EmployeeID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.RequestStatusDeclined, resp.RequestStatus)
	assert.Equal(t, domain.SlotStatusAvailable, resp.SlotStatus)
	assert.Equal(t, now, resp.DecidedAt)

	// Слот освобожден и снова доступен для запросов
	assert.Equal(t, domain.SlotStatusAvailable, slots.slots[10].Status)
	assert.Equal(t, domain.RequestStatusDeclined, requests.requests[100].Status)
	require.NotNil(t, requests.requests[100].DecidedAt)
}

func TestExecute_RequestNotFound(t *testing.T) {
	uc := NewUseCase(newFakeRequestRepo(), newFakeSlotRepo(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 404, EmployeeID: 1})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestExecute_DecisionIsFinal(t *testing.T) {
	req, slot := pendingPair()
	requests := newFakeRequestRepo(req)
	slots := newFakeSlotRepo(slot)

	uc := NewUseCase(requests, slots, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &stubClock{now: time.Now()}

	_, err := uc.Execute(context.Background(), &Request{RequestID: 100, EmployeeID: 1})
	require.NoError(t, err)

	// Повторное отклонение уже решенного запроса отклоняется
	_, err = uc.Execute(context.Background(), &Request{RequestID: 100, EmployeeID: 1})
	assert.ErrorIs(t, err, ErrRequestNotPending)
}

func TestExecute_ForeignEmployee(t *testing.T) {
	req, slot := pendingPair()
	uc := NewUseCase(newFakeRequestRepo(req), newFakeSlotRepo(slot), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 100, EmployeeID: 2})
	assert.ErrorIs(t, err, ErrForbidden)
}
