package modification

import (
	"fmt"

	"salonbooking/models"
)

// resolution is the minute-space outcome of the decision procedure; the service
// layer converts it back to instants.
type resolution struct {
	status       string
	newStartMin  int
	newEndMin    int
	shiftMinutes int
	reasonCode   string
	reason       string
}

// resolveExtension runs the extend → shift-back decision procedure for one
// booking. open are the day's open ranges; others are the day's busy ranges with
// the booking itself already excluded. Pure function, no hidden state.
//
// Tie-break policy: extending at the same start always beats shifting back, and
// shifting back always beats giving up. No other candidates are considered;
// the caller probes the slot generator for alternatives if it wants them.
func resolveExtension(open, others []models.TimeRange, startMin, currentDurMin, newDurMin int) resolution {
	extensionNeeded := newDurMin - currentDurMin
	if extensionNeeded <= 0 {
		// Shrinking or keeping the duration frees time; nothing can conflict.
		return resolution{status: models.ModificationCanExtend}
	}

	day, ok := openRangeContaining(open, startMin)
	if !ok {
		return resolution{
			status:     models.ModificationNoAvailability,
			reasonCode: models.ReasonScheduleUnavailable,
			reason:     "working hours for this date are unavailable or could not be parsed",
		}
	}

	newEndMin := startMin + newDurMin
	extended := models.TimeRange{Start: startMin, End: newEndMin}

	pastClosing := !day.Contains(startMin, newEndMin)
	conflicted := overlapsAny(others, extended)
	if !pastClosing && !conflicted {
		return resolution{status: models.ModificationCanExtend}
	}

	// Why the in-place extension failed determines the explanation attached to
	// the shift-back proposal.
	blockCode := models.ReasonBookingConflict
	blockText := "extending in place would overlap another booking"
	if pastClosing && !conflicted {
		blockCode = models.ReasonScheduleBoundary
		blockText = "extending in place would run past closing time"
	}

	proposedStart := startMin - extensionNeeded
	proposed := models.TimeRange{Start: proposedStart, End: proposedStart + newDurMin}

	if proposedStart >= day.Start && !overlapsAny(others, proposed) {
		return resolution{
			status:       models.ModificationCanShiftBack,
			newStartMin:  proposed.Start,
			newEndMin:    proposed.End,
			shiftMinutes: extensionNeeded,
			reasonCode:   blockCode,
			reason:       fmt.Sprintf("%s; starting %d minutes earlier instead", blockText, extensionNeeded),
		}
	}

	if proposedStart < day.Start {
		return resolution{
			status:     models.ModificationNoAvailability,
			reasonCode: models.ReasonScheduleBoundary,
			reason:     "no room to extend: shifting earlier would start before opening time",
		}
	}
	return resolution{
		status:     models.ModificationNoAvailability,
		reasonCode: models.ReasonBookingConflict,
		reason:     "no room to extend: another booking blocks both extending and shifting earlier",
	}
}

func openRangeContaining(open []models.TimeRange, minute int) (models.TimeRange, bool) {
	for _, r := range open {
		if r.Start <= minute && minute < r.End {
			return r, true
		}
	}
	return models.TimeRange{}, false
}

func overlapsAny(ranges []models.TimeRange, candidate models.TimeRange) bool {
	for _, r := range ranges {
		if r.Overlaps(candidate) {
			return true
		}
	}
	return false
}
