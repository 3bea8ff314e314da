package get_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-SchedulerService/internal/service/schedule"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgInvalidDays       = "некорректный параметр days"
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

// Handle GET /api/v1/employees/{employeeId}/slots?days=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("GET /employees/{id}/slots - Invalid employee ID: %q", vars["employeeId"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	// days опционален: 0 означает дефолтное окно
	limitDays := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		limitDays, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /employees/{id}/slots - Invalid days param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	slots, err := h.service.FetchSlotsInRange(r.Context(), employeeID, limitDays)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)

		default:
			h.logger.Error("GET /employees/{id}/slots - Failed to fetch slots: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(slots))
}
