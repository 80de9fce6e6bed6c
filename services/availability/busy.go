package availability

import (
	"context"
	"time"

	"salonbooking/models"
)

// busyRangesByDay fetches busy intervals for [fromDate, toDate] and buckets them
// per local calendar day as minute-of-day ranges clamped to [0, 1440]. An
// interval crossing local midnight contributes a clamped piece to every day it
// touches. The calendar provider rejects or silently truncates long spans, so
// the query is split into chronological chunks no wider than the configured
// window; chunk order matters because each day's bucket must be complete before
// the subtractor consumes it.
func (s *DefaultAvailabilityService) busyRangesByDay(ctx context.Context, fromDate, toDate string) (map[string][]models.TimeRange, error) {
	from, err := AtMinute(fromDate, 0, s.Loc)
	if err != nil {
		return nil, err
	}
	to, err := AtMinute(toDate, 0, s.Loc)
	if err != nil {
		return nil, err
	}
	to = to.AddDate(0, 0, 1)

	windowDays := s.QueryWindowDays
	if windowDays <= 0 {
		// A non-positive window would never advance the chunk cursor.
		windowDays = 30
	}
	window := time.Duration(windowDays) * 24 * time.Hour

	buckets := make(map[string][]models.TimeRange)
	for chunkStart := from; chunkStart.Before(to); {
		chunkEnd := chunkStart.Add(window)
		if chunkEnd.After(to) {
			chunkEnd = to
		}

		intervals, err := s.Calendar.QueryBusyIntervals(ctx, chunkStart, chunkEnd)
		if err != nil {
			return nil, err
		}
		for _, interval := range intervals {
			bucketInterval(buckets, interval, s.Loc)
		}
		chunkStart = chunkEnd
	}
	return buckets, nil
}

// bucketInterval splits one busy interval across the local days it covers.
func bucketInterval(buckets map[string][]models.TimeRange, interval models.BusyInterval, loc *time.Location) {
	start := interval.Start.In(loc)
	end := interval.End.In(loc)
	if !end.After(start) {
		return
	}

	for day := start; day.Before(end); day = nextMidnight(day, loc) {
		date := day.Format(dateLayout)

		startMin := 0
		if day.Equal(start) {
			startMin = MinuteOfDay(start, loc)
		}
		endMin := models.MinutesPerDay
		if DateOf(end, loc) == date {
			endMin = MinuteOfDay(end, loc)
		}
		if endMin > startMin {
			buckets[date] = append(buckets[date], models.TimeRange{Start: startMin, End: endMin})
		}
	}
}

func nextMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
}
