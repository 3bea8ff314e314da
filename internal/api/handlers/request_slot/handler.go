package request_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	requestSlot "github.com/m04kA/SMC-SchedulerService/internal/usecase/request_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidCustomer    = "некорректные данные клиента"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "слот уже занят"
)

type Handler struct {
	useCase RequestSlotUseCase
	logger  Logger
}

func NewHandler(useCase RequestSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("POST /slots/{id}/request - Invalid slot ID: %q", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req RequestSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /slots/{id}/request - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomer)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slotID))
	if err != nil {
		switch {
		case errors.Is(err, requestSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/request - Slot not found: id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, requestSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /slots/{id}/request - Slot not available: id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, requestSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/request - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomer)

		default:
			h.logger.Error("POST /slots/{id}/request - Failed to request slot id=%d: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/request - Request created: request_id=%d slot_id=%d", result.RequestID, slotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
