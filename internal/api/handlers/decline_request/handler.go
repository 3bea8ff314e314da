package decline_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	declineRequest "github.com/m04kA/SMC-SchedulerService/internal/usecase/decline_request"
)

const (
	msgInvalidRequestID  = "некорректный ID запроса"
	msgUnauthorized      = "требуется аутентификация"
	msgRequestNotFound   = "запрос на бронирование не найден"
	msgRequestNotPending = "запрос уже обработан"
	msgForbidden         = "запрос относится к другому сотруднику"
)

type Handler struct {
	useCase DeclineRequestUseCase
	logger  Logger
}

func NewHandler(useCase DeclineRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/decline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		h.logger.Warn("POST /requests/{id}/decline - Invalid request ID: %q", vars["requestId"])
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &declineRequest.Request{
		RequestID:  requestID,
		EmployeeID: employeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, declineRequest.ErrRequestNotFound):
			h.logger.Warn("POST /requests/{id}/decline - Request not found: id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, declineRequest.ErrRequestNotPending):
			h.logger.Warn("POST /requests/{id}/decline - Request not pending: id=%d", requestID)
			handlers.RespondConflict(w, msgRequestNotPending)

		case errors.Is(err, declineRequest.ErrForbidden):
			h.logger.Warn("POST /requests/{id}/decline - Forbidden: request_id=%d employee_id=%d", requestID, employeeID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, declineRequest.ErrInvalidInput):
			h.logger.Warn("POST /requests/{id}/decline - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		default:
			h.logger.Error("POST /requests/{id}/decline - Failed to decline request id=%d: %v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/{id}/decline - Request declined: request_id=%d slot_id=%d employee_id=%d",
		result.RequestID, result.SlotID, employeeID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
