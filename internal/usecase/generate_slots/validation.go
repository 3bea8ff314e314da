package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// validateRequest проверяет параметры генерации и подставляет дефолты
// вместо незаданных значений
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.DaysAhead == 0 {
		req.DaysAhead = domain.DefaultDaysAhead
	}
	if req.DaysAhead < domain.MinDaysAhead || req.DaysAhead > domain.MaxDaysAhead {
		return fmt.Errorf("%w: daysAhead must be between %d and %d", ErrInvalidInput, domain.MinDaysAhead, domain.MaxDaysAhead)
	}

	if req.SlotMinutes == 0 {
		req.SlotMinutes = domain.DefaultSlotMinutes
	}
	if req.SlotMinutes < domain.MinSlotMinutes || req.SlotMinutes > domain.MaxSlotMinutes {
		return fmt.Errorf("%w: slotMinutes must be between %d and %d", ErrInvalidInput, domain.MinSlotMinutes, domain.MaxSlotMinutes)
	}

	if req.WorkStart.IsZero() {
		req.WorkStart = types.TimeString(domain.DefaultWorkStart)
	}
	if req.WorkEnd.IsZero() {
		req.WorkEnd = types.TimeString(domain.DefaultWorkEnd)
	}
	if err := req.WorkStart.Validate(); err != nil {
		return fmt.Errorf("%w: workStart: %v", ErrInvalidInput, err)
	}
	if err := req.WorkEnd.Validate(); err != nil {
		return fmt.Errorf("%w: workEnd: %v", ErrInvalidInput, err)
	}
	if !req.WorkStart.IsBefore(req.WorkEnd) {
		return fmt.Errorf("%w: workStart %s must be before workEnd %s", ErrInvalidInput, req.WorkStart, req.WorkEnd)
	}

	return nil
}
