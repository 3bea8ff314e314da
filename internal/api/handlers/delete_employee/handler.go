package delete_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	deleteEmployee "github.com/m04kA/SMC-SchedulerService/internal/usecase/delete_employee"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgEmployeeNotFound  = "сотрудник не найден"
)

type Handler struct {
	useCase DeleteEmployeeUseCase
	logger  Logger
}

func NewHandler(useCase DeleteEmployeeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("DELETE /employees/{id} - Invalid employee ID: %q", vars["employeeId"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if err := h.useCase.Execute(r.Context(), employeeID); err != nil {
		switch {
		case errors.Is(err, deleteEmployee.ErrEmployeeNotFound):
			h.logger.Warn("DELETE /employees/{id} - Employee not found: id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, deleteEmployee.ErrInvalidInput):
			h.logger.Warn("DELETE /employees/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)

		default:
			h.logger.Error("DELETE /employees/{id} - Failed to delete employee id=%d: %v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /employees/{id} - Employee deleted: id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
