package create_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	employeesService "github.com/m04kA/SMC-SchedulerService/internal/service/employees"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmployeeExists     = "сотрудник с таким именем уже существует"
	msgInvalidName        = "некорректное имя сотрудника"
)

type Handler struct {
	service EmployeesService
	logger  Logger
}

func NewHandler(service EmployeesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /employees - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidName)
		return
	}

	employee, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, employeesService.ErrEmployeeExists):
			h.logger.Warn("POST /employees - Employee already exists: name=%q", req.Name)
			handlers.RespondConflict(w, msgEmployeeExists)

		case errors.Is(err, employeesService.ErrInvalidInput):
			h.logger.Warn("POST /employees - Invalid name: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /employees - Failed to create employee: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employees - Employee created: id=%d name=%q", employee.ID, employee.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(employee))
}
