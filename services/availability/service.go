package availability

import (
	"context"
	"time"

	"salonbooking/models"
	calendarSvc "salonbooking/services/calendar"
	scheduleSvc "salonbooking/services/schedule"
)

// DefaultAvailabilityService derives free time from the schedule mirror and the
// calendar's busy intervals. Every method is pure over its inputs plus the two
// collaborators; concurrent calls need no coordination.
type DefaultAvailabilityService struct {
	Schedule        scheduleSvc.ScheduleService
	Calendar        calendarSvc.CalendarService
	Loc             *time.Location
	StepMinutes     int
	QueryWindowDays int

	// Now is stubbed in tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) step(stepMin int) int {
	if stepMin > 0 {
		return stepMin
	}
	if s.StepMinutes > 0 {
		return s.StepMinutes
	}
	return 15
}

// GetDaySlots returns all bookable slots of exactly durationMin minutes for a
// date: schedule resolution, busy subtraction, then step-aligned generation.
func (s *DefaultAvailabilityService) GetDaySlots(ctx context.Context, date string, durationMin, stepMin int) ([]models.Slot, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if _, err := time.ParseInLocation(dateLayout, date, s.Loc); err != nil {
		return nil, ErrInvalidDate
	}

	free, err := s.FreeRanges(ctx, date)
	if err != nil {
		return nil, err
	}
	return BuildDaySlots(free, date, durationMin, s.step(stepMin), s.now(), s.Loc)
}

// GetAvailableDays reports, for each date in [fromDate, toDate], whether at
// least one slot of durationMin minutes can be offered.
func (s *DefaultAvailabilityService) GetAvailableDays(ctx context.Context, fromDate, toDate string, durationMin int) ([]models.DayAvailability, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	from, err := time.ParseInLocation(dateLayout, fromDate, s.Loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := time.ParseInLocation(dateLayout, toDate, s.Loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if to.Before(from) {
		return nil, ErrInvalidDate
	}

	weekly, err := s.Schedule.WeeklySchedule(ctx)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.Schedule.Exceptions(ctx)
	if err != nil {
		return nil, err
	}
	busyByDay, err := s.busyRangesByDay(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	step := s.step(0)

	var days []models.DayAvailability
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)

		open, err := ResolveOpenRanges(weekly, exceptions, date, s.Loc)
		if err != nil {
			return nil, err
		}
		free := SubtractRanges(open, busyByDay[date])
		slots, err := BuildDaySlots(free, date, durationMin, step, now, s.Loc)
		if err != nil {
			return nil, err
		}
		days = append(days, models.DayAvailability{
			Date:          date,
			HasOpenWindow: len(slots) > 0,
		})
	}
	return days, nil
}

// FreeRanges returns the date's open ranges minus calendar busy coverage,
// before the today-cutoff is applied.
func (s *DefaultAvailabilityService) FreeRanges(ctx context.Context, date string) ([]models.TimeRange, error) {
	weekly, err := s.Schedule.WeeklySchedule(ctx)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.Schedule.Exceptions(ctx)
	if err != nil {
		return nil, err
	}
	open, err := ResolveOpenRanges(weekly, exceptions, date, s.Loc)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, nil
	}

	busyByDay, err := s.busyRangesByDay(ctx, date, date)
	if err != nil {
		return nil, err
	}
	return SubtractRanges(open, busyByDay[date]), nil
}
