package modification

import (
	"context"
	"time"

	"salonbooking/models"
	availabilitySvc "salonbooking/services/availability"
	calendarSvc "salonbooking/services/calendar"
	scheduleSvc "salonbooking/services/schedule"
)

// DefaultModificationService evaluates duration changes against the day's open
// ranges and the calendar's busy set. It never writes to the calendar; applying
// an accepted outcome is the caller's move.
type DefaultModificationService struct {
	Schedule scheduleSvc.ScheduleService
	Calendar calendarSvc.CalendarService
	Loc      *time.Location
}

func (s *DefaultModificationService) CheckExtension(ctx context.Context, eventID string, currentStart, currentEnd time.Time, newDurationMin int) (models.ModificationOutcome, error) {
	date := availabilitySvc.DateOf(currentStart, s.Loc)

	weekly, err := s.Schedule.WeeklySchedule(ctx)
	if err != nil {
		return models.ModificationOutcome{}, err
	}
	exceptions, err := s.Schedule.Exceptions(ctx)
	if err != nil {
		return models.ModificationOutcome{}, err
	}
	open, err := availabilitySvc.ResolveOpenRanges(weekly, exceptions, date, s.Loc)
	if err != nil {
		return models.ModificationOutcome{}, err
	}

	dayStart, err := availabilitySvc.AtMinute(date, 0, s.Loc)
	if err != nil {
		return models.ModificationOutcome{}, err
	}
	busy, err := s.Calendar.QueryBusyIntervals(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return models.ModificationOutcome{}, err
	}
	others := ExcludeOwnInterval(busy, eventID, currentStart, currentEnd)

	startMin := availabilitySvc.MinuteOfDay(currentStart, s.Loc)
	currentDur := int(currentEnd.Sub(currentStart).Minutes())

	res := resolveExtension(open, clampToDay(others, date, s.Loc), startMin, currentDur, newDurationMin)
	return s.toOutcome(res, date)
}

// clampToDay converts busy intervals to minute-of-day ranges for the booking's
// date, clamping anything that spills over midnight.
func clampToDay(intervals []models.BusyInterval, date string, loc *time.Location) []models.TimeRange {
	var ranges []models.TimeRange
	for _, interval := range intervals {
		startDate := availabilitySvc.DateOf(interval.Start, loc)
		endDate := availabilitySvc.DateOf(interval.End, loc)
		// ISO dates compare lexicographically.
		if startDate > date || endDate < date {
			continue
		}

		startMin := 0
		if startDate == date {
			startMin = availabilitySvc.MinuteOfDay(interval.Start, loc)
		}
		endMin := models.MinutesPerDay
		if endDate == date {
			endMin = availabilitySvc.MinuteOfDay(interval.End, loc)
		}
		if endMin > startMin {
			ranges = append(ranges, models.TimeRange{Start: startMin, End: endMin})
		}
	}
	return ranges
}

func (s *DefaultModificationService) toOutcome(res resolution, date string) (models.ModificationOutcome, error) {
	outcome := models.ModificationOutcome{
		Status:     res.status,
		ReasonCode: res.reasonCode,
		Reason:     res.reason,
	}
	if res.status != models.ModificationCanShiftBack {
		return outcome, nil
	}

	newStart, err := availabilitySvc.AtMinute(date, res.newStartMin, s.Loc)
	if err != nil {
		return models.ModificationOutcome{}, err
	}
	newEnd, err := availabilitySvc.AtMinute(date, res.newEndMin, s.Loc)
	if err != nil {
		return models.ModificationOutcome{}, err
	}
	outcome.NewStartISO = newStart.Format(time.RFC3339)
	outcome.NewEndISO = newEnd.Format(time.RFC3339)
	outcome.ShiftMinutes = res.shiftMinutes
	return outcome, nil
}
