package delete_login

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	credentialsService "github.com/m04kA/SMC-SchedulerService/internal/service/credentials"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgLoginNotFound     = "у сотрудника нет логина"
)

type Handler struct {
	service CredentialsService
	logger  Logger
}

func NewHandler(service CredentialsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/employees/{employeeId}/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("DELETE /employees/{id}/login - Invalid employee ID: %q", vars["employeeId"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if err := h.service.DeleteLogin(r.Context(), employeeID); err != nil {
		switch {
		case errors.Is(err, credentialsService.ErrLoginNotFound):
			h.logger.Warn("DELETE /employees/{id}/login - Login not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgLoginNotFound)

		default:
			h.logger.Error("DELETE /employees/{id}/login - Failed to delete login: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /employees/{id}/login - Login deleted: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
