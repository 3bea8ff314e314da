package generate_slots

import "github.com/m04kA/SMC-SchedulerService/pkg/types"

// Request параметры генерации слотов.
// Нулевые значения заменяются дефолтами при валидации.
type Request struct {
	EmployeeID   int64            // ID сотрудника
	DaysAhead    int              // Горизонт генерации в днях от сегодня
	SlotMinutes  int              // Длительность слота в минутах
	WorkStart    types.TimeString // Начало рабочего дня
	WorkEnd      types.TimeString // Конец рабочего дня
	WeekdaysOnly bool             // Пропускать субботу и воскресенье
}

// Response результат генерации слотов
type Response struct {
	EmployeeID int64 // ID сотрудника
	Created    int   // Сколько новых слотов вставлено
	Skipped    int   // Сколько интервалов уже существовало
}
