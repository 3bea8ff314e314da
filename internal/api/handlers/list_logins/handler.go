package list_logins

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
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

// Handle GET /api/v1/logins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	logins, err := h.service.ListLogins(r.Context())
	if err != nil {
		h.logger.Error("GET /logins - Failed to list logins: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(logins))
}
