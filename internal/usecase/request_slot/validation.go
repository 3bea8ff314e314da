package request_slot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// validateRequest проверяет и нормализует входные данные запроса.
// Имя обрезается по пробелам, email приводится к нижнему регистру —
// один клиент всегда виден под одним адресом.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long (max %d)", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	req.CustomerEmail = strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if !isValidEmail(req.CustomerEmail) {
		return fmt.Errorf("%w: customer email is malformed", ErrInvalidInput)
	}

	return nil
}

// isValidEmail минимальная проверка формы адреса: непустая локальная
// часть, один @, домен с точкой
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	local, dom := email[:at], email[at+1:]
	if local == "" || dom == "" {
		return false
	}
	dot := strings.LastIndex(dom, ".")
	return dot > 0 && dot < len(dom)-1
}
