package set_login

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	credentialsService "github.com/m04kA/SMC-SchedulerService/internal/service/credentials"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmployeeID  = "некорректный ID сотрудника"
	msgInvalidLogin       = "некорректные логин или пароль"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgUsernameTaken      = "логин занят другим сотрудником"
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

// Handle PUT /api/v1/employees/{employeeId}/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("PUT /employees/{id}/login - Invalid employee ID: %q", vars["employeeId"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req SetLoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{id}/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /employees/{id}/login - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLogin)
		return
	}

	if err := h.service.SetLogin(r.Context(), employeeID, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, credentialsService.ErrEmployeeNotFound):
			h.logger.Warn("PUT /employees/{id}/login - Employee not found: id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, credentialsService.ErrUsernameTaken):
			h.logger.Warn("PUT /employees/{id}/login - Username taken: employee_id=%d", employeeID)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, credentialsService.ErrInvalidInput):
			h.logger.Warn("PUT /employees/{id}/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLogin)

		default:
			h.logger.Error("PUT /employees/{id}/login - Failed to set login: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /employees/{id}/login - Login saved: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
