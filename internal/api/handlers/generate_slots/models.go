package generate_slots

import (
	generateSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// GenerateSlotsRequest HTTP request model.
// Незаполненные поля заменяются дефолтами рабочего расписания.
type GenerateSlotsRequest struct {
	DaysAhead    int    `json:"daysAhead" validate:"omitempty,min=1,max=365"`
	SlotMinutes  int    `json:"slotMinutes" validate:"omitempty,min=5,max=480"`
	WorkStart    string `json:"workStart" validate:"omitempty,len=5"`  // "09:00"
	WorkEnd      string `json:"workEnd" validate:"omitempty,len=5"`    // "17:00"
	WeekdaysOnly *bool  `json:"weekdaysOnly"`                          // по умолчанию true
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	EmployeeID int64 `json:"employeeId"`
	Created    int   `json:"created"`
	Skipped    int   `json:"skipped"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest(employeeID int64) (*generateSlots.Request, error) {
	var workStart, workEnd types.TimeString
	var err error

	if r.WorkStart != "" {
		workStart, err = types.NewTimeStringFromString(r.WorkStart)
		if err != nil {
			return nil, err
		}
	}
	if r.WorkEnd != "" {
		workEnd, err = types.NewTimeStringFromString(r.WorkEnd)
		if err != nil {
			return nil, err
		}
	}

	weekdaysOnly := true
	if r.WeekdaysOnly != nil {
		weekdaysOnly = *r.WeekdaysOnly
	}

	return &generateSlots.Request{
		EmployeeID:   employeeID,
		DaysAhead:    r.DaysAhead,
		SlotMinutes:  r.SlotMinutes,
		WorkStart:    workStart,
		WorkEnd:      workEnd,
		WeekdaysOnly: weekdaysOnly,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		EmployeeID: resp.EmployeeID,
		Created:    resp.Created,
		Skipped:    resp.Skipped,
	}
}
