package modification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonbooking/models"
)

func TestResolveExtension(t *testing.T) {
	workday := []models.TimeRange{{Start: 540, End: 1080}} // 09:00-18:00

	t.Run("free tail extends in place", func(t *testing.T) {
		// 10:00-11:00 to 90 minutes, nothing after it.
		res := resolveExtension(workday, nil, 600, 60, 90)
		assert.Equal(t, models.ModificationCanExtend, res.status)
		assert.Empty(t, res.reasonCode)
	})

	t.Run("shrinking always succeeds", func(t *testing.T) {
		res := resolveExtension(workday, []models.TimeRange{{Start: 660, End: 720}}, 600, 60, 30)
		assert.Equal(t, models.ModificationCanExtend, res.status)
	})

	t.Run("same duration succeeds", func(t *testing.T) {
		res := resolveExtension(workday, nil, 600, 60, 60)
		assert.Equal(t, models.ModificationCanExtend, res.status)
	})

	t.Run("blocked ahead, free behind shifts back", func(t *testing.T) {
		// 10:00-11:00 to 90 minutes with the next booking at 11:00.
		others := []models.TimeRange{{Start: 660, End: 720}}
		res := resolveExtension(workday, others, 600, 60, 90)

		assert.Equal(t, models.ModificationCanShiftBack, res.status)
		assert.Equal(t, 570, res.newStartMin) // 09:30
		assert.Equal(t, 660, res.newEndMin)   // 11:00
		assert.Equal(t, 30, res.shiftMinutes)
		assert.Equal(t, models.ReasonBookingConflict, res.reasonCode)
	})

	t.Run("shift magnitude equals the extension, never more", func(t *testing.T) {
		// Plenty of space behind; the proposal still moves by exactly 45.
		others := []models.TimeRange{{Start: 780, End: 840}}
		res := resolveExtension(workday, others, 720, 60, 105)

		assert.Equal(t, models.ModificationCanShiftBack, res.status)
		assert.Equal(t, 45, res.shiftMinutes)
		assert.Equal(t, 720-45, res.newStartMin)
	})

	t.Run("past closing with free morning shifts back", func(t *testing.T) {
		// 17:00-18:00 to 90 minutes runs past 18:00.
		res := resolveExtension(workday, nil, 1020, 60, 90)

		assert.Equal(t, models.ModificationCanShiftBack, res.status)
		assert.Equal(t, 990, res.newStartMin)
		assert.Equal(t, models.ReasonScheduleBoundary, res.reasonCode)
	})

	t.Run("blocked both directions", func(t *testing.T) {
		// Bookings tight on both sides of 10:00-11:00.
		others := []models.TimeRange{{Start: 540, End: 600}, {Start: 660, End: 720}}
		res := resolveExtension(workday, others, 600, 60, 90)

		assert.Equal(t, models.ModificationNoAvailability, res.status)
		assert.Equal(t, models.ReasonBookingConflict, res.reasonCode)
	})

	t.Run("first booking of the day cannot shift past opening", func(t *testing.T) {
		// 09:00-10:00 to 90 minutes with the next booking at 10:00.
		others := []models.TimeRange{{Start: 600, End: 660}}
		res := resolveExtension(workday, others, 540, 60, 90)

		assert.Equal(t, models.ModificationNoAvailability, res.status)
		assert.Equal(t, models.ReasonScheduleBoundary, res.reasonCode)
	})

	t.Run("shift landing exactly at opening is allowed", func(t *testing.T) {
		// 09:30-10:30 to 90 minutes, blocked at 10:30; shifted start is 09:00.
		others := []models.TimeRange{{Start: 630, End: 690}}
		res := resolveExtension(workday, others, 570, 60, 90)

		assert.Equal(t, models.ModificationCanShiftBack, res.status)
		assert.Equal(t, 540, res.newStartMin)
	})

	t.Run("shifted window must clear other bookings too", func(t *testing.T) {
		// Blocked at 11:00 and a booking ending 09:45 sits where the shifted
		// window would start.
		others := []models.TimeRange{{Start: 540, End: 585}, {Start: 660, End: 720}}
		res := resolveExtension(workday, others, 600, 60, 90)

		assert.Equal(t, models.ModificationNoAvailability, res.status)
		assert.Equal(t, models.ReasonBookingConflict, res.reasonCode)
	})

	t.Run("extension past closing of split shift block", func(t *testing.T) {
		split := []models.TimeRange{{Start: 540, End: 780}, {Start: 840, End: 1080}}
		// 12:00-13:00 to 90 minutes runs past the 13:00 block end; morning free.
		res := resolveExtension(split, nil, 720, 60, 90)

		assert.Equal(t, models.ModificationCanShiftBack, res.status)
		assert.Equal(t, 690, res.newStartMin)
		assert.Equal(t, models.ReasonScheduleBoundary, res.reasonCode)
	})

	t.Run("no open range for the booking start", func(t *testing.T) {
		res := resolveExtension(nil, nil, 600, 60, 90)

		assert.Equal(t, models.ModificationNoAvailability, res.status)
		assert.Equal(t, models.ReasonScheduleUnavailable, res.reasonCode)
	})

	t.Run("booking outside working hours", func(t *testing.T) {
		// Legacy 08:00 booking before opening.
		res := resolveExtension(workday, nil, 480, 60, 90)

		assert.Equal(t, models.ModificationNoAvailability, res.status)
		assert.Equal(t, models.ReasonScheduleUnavailable, res.reasonCode)
	})

	t.Run("adjacent booking is not a conflict", func(t *testing.T) {
		// Extension ends exactly where the next booking starts.
		others := []models.TimeRange{{Start: 690, End: 750}}
		res := resolveExtension(workday, others, 600, 60, 90)

		assert.Equal(t, models.ModificationCanExtend, res.status)
	})
}

func TestResolveExtensionMonotonic(t *testing.T) {
	workday := []models.TimeRange{{Start: 540, End: 1080}}
	// 10:00-11:00 booking with the next one at 12:00: in-place extension works
	// up to 120 minutes and not beyond.
	others := []models.TimeRange{{Start: 720, End: 780}}

	// Once some duration no longer extends in place, no larger one may.
	extendable := true
	for newDur := 60; newDur <= 240; newDur += 15 {
		res := resolveExtension(workday, others, 600, 60, newDur)
		canExtend := res.status == models.ModificationCanExtend
		if !extendable {
			assert.False(t, canExtend, "duration %d extends although a shorter one did not", newDur)
		}
		extendable = extendable && canExtend
	}

	// And the boundary sits exactly where the next booking starts.
	assert.Equal(t, models.ModificationCanExtend, resolveExtension(workday, others, 600, 60, 120).status)
	assert.NotEqual(t, models.ModificationCanExtend, resolveExtension(workday, others, 600, 60, 135).status)
}
