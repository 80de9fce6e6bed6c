package modification

import (
	"time"

	"salonbooking/models"
)

// timeMatchTolerance is how far apart two instants may be and still count as
// "the same booking" when no event ID is available to match on.
const timeMatchTolerance = time.Second

// ExcludeOwnInterval removes the booking under modification from the busy set.
// Two-stage strategy: an exact event-ID match is authoritative; only when the
// busy interval carries no ID do we fall back to matching the exact time window
// within a small tolerance. The fallback exists for legacy records created
// outside the service and is knowingly imprecise.
func ExcludeOwnInterval(busy []models.BusyInterval, eventID string, start, end time.Time) []models.BusyInterval {
	others := make([]models.BusyInterval, 0, len(busy))
	for _, interval := range busy {
		if isOwnInterval(interval, eventID, start, end) {
			continue
		}
		others = append(others, interval)
	}
	return others
}

func isOwnInterval(interval models.BusyInterval, eventID string, start, end time.Time) bool {
	if interval.EventID != "" && eventID != "" {
		return interval.EventID == eventID
	}
	return withinTolerance(interval.Start, start) && withinTolerance(interval.End, end)
}

func withinTolerance(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= timeMatchTolerance
}
