package get_pending_requests

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgUnauthorized      = "требуется аутентификация"
	msgForbidden         = "доступ только к своим запросам"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/requests/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authEmployeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("GET /employees/{id}/requests/pending - Invalid employee ID: %q", vars["employeeId"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	// Сотрудник видит только собственную очередь запросов
	if employeeID != authEmployeeID {
		h.logger.Warn("GET /employees/{id}/requests/pending - Forbidden: path_id=%d auth_id=%d", employeeID, authEmployeeID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	requests, err := h.service.FetchPendingRequests(r.Context(), employeeID)
	if err != nil {
		h.logger.Error("GET /employees/{id}/requests/pending - Failed to fetch requests: employee_id=%d, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(requests))
}
