package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// interval кандидат на слот: конкретные начало и конец
type interval struct {
	startAt time.Time
	endAt   time.Time
}

// buildIntervals раскладывает рабочие дни окна [today, today+daysAhead)
// на последовательные интервалы по slotMinutes минут.
// Неполный хвост рабочего дня отбрасывается: слот либо целиком
// помещается до workEnd, либо не создается.
func buildIntervals(today time.Time, daysAhead, slotMinutes int, workStart, workEnd types.TimeString, weekdaysOnly bool) ([]interval, error) {
	startMin, err := workStart.Minutes()
	if err != nil {
		return nil, err
	}
	endMin, err := workEnd.Minutes()
	if err != nil {
		return nil, err
	}

	intervals := make([]interval, 0, daysAhead*(endMin-startMin)/slotMinutes)

	for dayOffset := 0; dayOffset < daysAhead; dayOffset++ {
		day := today.AddDate(0, 0, dayOffset)

		if weekdaysOnly {
			wd := day.Weekday()
			if wd == time.Saturday || wd == time.Sunday {
				continue
			}
		}

		for cur := startMin; cur+slotMinutes <= endMin; cur += slotMinutes {
			startAt := time.Date(day.Year(), day.Month(), day.Day(), cur/60, cur%60, 0, 0, day.Location())
			endAt := startAt.Add(time.Duration(slotMinutes) * time.Minute)
			intervals = append(intervals, interval{startAt: startAt, endAt: endAt})
		}
	}

	return intervals, nil
}
