package availability

import (
	"time"

	"salonbooking/models"
)

// BuildDaySlots turns the day's free ranges into step-aligned candidate slots of
// exactly durationMin minutes. For the current business-zone day the effective
// window start of every range is raised to the next full hour from now: clients
// cannot book into the past or mid-current-hour.
func BuildDaySlots(free []models.TimeRange, date string, durationMin, stepMin int, now time.Time, loc *time.Location) ([]models.Slot, error) {
	if durationMin <= 0 || stepMin <= 0 {
		return nil, nil
	}

	cutoff := todayCutoff(date, now, loc)

	var slots []models.Slot
	for _, r := range free {
		start := r.Start
		if start < cutoff {
			start = cutoff
		}
		// Align to the step grid.
		start = ((start + stepMin - 1) / stepMin) * stepMin

		for ; start+durationMin <= r.End; start += stepMin {
			startAt, err := AtMinute(date, start, loc)
			if err != nil {
				return nil, err
			}
			endAt, err := AtMinute(date, start+durationMin, loc)
			if err != nil {
				return nil, err
			}
			slots = append(slots, models.Slot{
				StartISO: startAt.Format(time.RFC3339),
				EndISO:   endAt.Format(time.RFC3339),
			})
		}
	}
	return slots, nil
}

// todayCutoff returns the minimum minute-of-day a slot may start at. Zero for
// any date other than today; the start of the next full hour for today.
func todayCutoff(date string, now time.Time, loc *time.Location) int {
	if DateOf(now, loc) != date {
		return 0
	}
	local := now.In(loc)
	nextHour := time.Date(local.Year(), local.Month(), local.Day(), local.Hour()+1, 0, 0, 0, loc)
	if DateOf(nextHour, loc) != date {
		// Past 23:00, nothing bookable today.
		return models.MinutesPerDay
	}
	return MinuteOfDay(nextHour, loc)
}
