package availability

import (
	"time"

	"salonbooking/models"
)

// ResolveDayEntry combines the weekday's recurring entry with a date exception.
// The exception overrides field-by-field: a non-empty Hours replaces the weekly
// hours, and IsDayOff always replaces the weekly flag, in either direction. An
// absent weekday defaults to a day off.
func ResolveDayEntry(weekly models.WeeklySchedule, exceptions models.ExceptionSchedule, date string, loc *time.Location) (models.ScheduleEntry, error) {
	weekday, err := WeekdayName(date, loc)
	if err != nil {
		return models.ScheduleEntry{}, err
	}

	entry, ok := weekly[weekday]
	if !ok {
		entry = models.ScheduleEntry{IsDayOff: true}
	}

	if exc, ok := exceptions[date]; ok {
		if exc.Hours != "" {
			entry.Hours = exc.Hours
		}
		entry.IsDayOff = exc.IsDayOff
	}
	return entry, nil
}

// ResolveOpenRanges returns the ordered open ranges for a date, or nil when the
// day is closed or its hours text yields nothing parseable.
func ResolveOpenRanges(weekly models.WeeklySchedule, exceptions models.ExceptionSchedule, date string, loc *time.Location) ([]models.TimeRange, error) {
	entry, err := ResolveDayEntry(weekly, exceptions, date, loc)
	if err != nil {
		return nil, err
	}
	if entry.IsDayOff || entry.Hours == "" {
		return nil, nil
	}
	return ParseRanges(entry.Hours), nil
}
