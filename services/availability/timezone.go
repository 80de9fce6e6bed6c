package availability

import (
	"time"
)

// dateLayout is the ISO date format used for day keys throughout the service.
const dateLayout = "2006-01-02"

// AtMinute returns the absolute instant for a minute-of-day on the given date in
// the business time zone. time.Date normalises the minute value against the wall
// clock, which keeps slot boundaries stable across DST transitions.
func AtMinute(date string, minute int, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minute, 0, 0, loc), nil
}

// MinuteOfDay converts an instant to minutes since local midnight in loc.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// DateOf formats an instant as its local calendar date in loc.
func DateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// WeekdayName returns the lowercase English weekday for a date, the key used by
// the weekly schedule.
func WeekdayName(date string, loc *time.Location) (string, error) {
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return "", err
	}
	return weekdayKey(day.Weekday()), nil
}

func weekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
