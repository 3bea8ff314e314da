package accept_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	acceptRequest "github.com/m04kA/SMC-SchedulerService/internal/usecase/accept_request"
)

const (
	msgInvalidRequestID  = "некорректный ID запроса"
	msgUnauthorized      = "требуется аутентификация"
	msgRequestNotFound   = "запрос на бронирование не найден"
	msgRequestNotPending = "запрос уже обработан"
	msgForbidden         = "запрос относится к другому сотруднику"
)

type Handler struct {
	useCase AcceptRequestUseCase
	logger  Logger
}

func NewHandler(useCase AcceptRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		h.logger.Warn("POST /requests/{id}/accept - Invalid request ID: %q", vars["requestId"])
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &acceptRequest.Request{
		RequestID:  requestID,
		EmployeeID: employeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, acceptRequest.ErrRequestNotFound):
			h.logger.Warn("POST /requests/{id}/accept - Request not found: id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, acceptRequest.ErrRequestNotPending):
			h.logger.Warn("POST /requests/{id}/accept - Request not pending: id=%d", requestID)
			handlers.RespondConflict(w, msgRequestNotPending)

		case errors.Is(err, acceptRequest.ErrForbidden):
			h.logger.Warn("POST /requests/{id}/accept - Forbidden: request_id=%d employee_id=%d", requestID, employeeID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, acceptRequest.ErrInvalidInput):
			h.logger.Warn("POST /requests/{id}/accept - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		default:
			h.logger.Error("POST /requests/{id}/accept - Failed to accept request id=%d: %v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/{id}/accept - Request accepted: request_id=%d slot_id=%d employee_id=%d",
		result.RequestID, result.SlotID, employeeID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
