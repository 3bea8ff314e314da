package request_slot_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestSlotHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/request_slot"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	requestSlot "github.com/m04kA/SMC-SchedulerService/internal/usecase/request_slot"
)

type fakeUseCase struct {
	resp *requestSlot.Response
	err  error
	got  *requestSlot.Request
}

func (u *fakeUseCase) Execute(ctx context.Context, req *requestSlot.Request) (*requestSlot.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	h := requestSlotHandler.NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/slots/{slotId}/request", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &requestSlot.Response{
		RequestID:     100,
		SlotID:        10,
		SlotStartAt:   start,
		SlotEndAt:     start.Add(30 * time.Minute),
		SlotStatus:    domain.SlotStatusPending,
		RequestStatus: domain.RequestStatusPending,
		CustomerName:  "Анна",
		CustomerEmail: "anna@example.com",
		CreatedAt:     start.Add(-48 * time.Hour),
	}}

	rec := doRequest(t, newRouter(uc), "/api/v1/slots/10/request", map[string]string{
		"customerName":  "Анна",
		"customerEmail": "anna@example.com",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp requestSlotHandler.RequestSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.RequestID)
	assert.Equal(t, int64(10), resp.SlotID)
	assert.Equal(t, "PENDING", resp.SlotStatus)
	assert.Equal(t, "2025-11-03T10:00:00", resp.SlotStartAt)

	// ID слота берется из пути, не из тела
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(10), uc.got.SlotID)
}

func TestHandle_SlotNotFound(t *testing.T) {
	uc := &fakeUseCase{err: requestSlot.ErrSlotNotFound}

	rec := doRequest(t, newRouter(uc), "/api/v1/slots/99/request", map[string]string{
		"customerName":  "Анна",
		"customerEmail": "anna@example.com",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_SlotNotAvailable(t *testing.T) {
	uc := &fakeUseCase{err: requestSlot.ErrSlotNotAvailable}

	rec := doRequest(t, newRouter(uc), "/api/v1/slots/10/request", map[string]string{
		"customerName":  "Анна",
		"customerEmail": "anna@example.com",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidSlotID(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, newRouter(uc), "/api/v1/slots/abc/request", map[string]string{
		"customerName":  "Анна",
		"customerEmail": "anna@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	router := newRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/10/request", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_ValidationRejectsBadEmail(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, newRouter(uc), "/api/v1/slots/10/request", map[string]string{
		"customerName":  "Анна",
		"customerEmail": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
