package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/models"
)

func slotStarts(slots []models.Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartISO)
	}
	return starts
}

func TestBuildDaySlots(t *testing.T) {
	loc := time.UTC
	workday := []models.TimeRange{{Start: 540, End: 1080}} // 09:00-18:00
	// A day safely in the future relative to the fake clock.
	otherDay := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)

	t.Run("full workday grid", func(t *testing.T) {
		slots, err := BuildDaySlots(workday, testMonday, 30, 15, otherDay, loc)
		require.NoError(t, err)
		require.Len(t, slots, 35)
		assert.Equal(t, "2025-06-02T09:00:00Z", slots[0].StartISO)
		assert.Equal(t, "2025-06-02T09:30:00Z", slots[0].EndISO)
		last := slots[len(slots)-1]
		assert.Equal(t, "2025-06-02T17:30:00Z", last.StartISO)
		assert.Equal(t, "2025-06-02T18:00:00Z", last.EndISO)
	})

	t.Run("busy block splits the grid", func(t *testing.T) {
		free := SubtractRanges(workday, []models.TimeRange{{Start: 600, End: 630}}) // 10:00-10:30
		slots, err := BuildDaySlots(free, testMonday, 30, 15, otherDay, loc)
		require.NoError(t, err)

		starts := slotStarts(slots)
		assert.Contains(t, starts, "2025-06-02T09:30:00Z")
		assert.Contains(t, starts, "2025-06-02T10:30:00Z")
		// Nothing may overlap the busy block.
		assert.NotContains(t, starts, "2025-06-02T09:45:00Z")
		assert.NotContains(t, starts, "2025-06-02T10:00:00Z")
		assert.NotContains(t, starts, "2025-06-02T10:15:00Z")
	})

	t.Run("unaligned free start rounds up to the grid", func(t *testing.T) {
		free := []models.TimeRange{{Start: 550, End: 720}} // 09:10-12:00
		slots, err := BuildDaySlots(free, testMonday, 30, 15, otherDay, loc)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.Equal(t, "2025-06-02T09:15:00Z", slots[0].StartISO)
	})

	t.Run("range shorter than duration yields nothing", func(t *testing.T) {
		free := []models.TimeRange{{Start: 540, End: 560}}
		slots, err := BuildDaySlots(free, testMonday, 30, 15, otherDay, loc)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("today starts at the next full hour", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 10, 20, 0, 0, loc)
		slots, err := BuildDaySlots(workday, testMonday, 30, 15, now, loc)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.Equal(t, "2025-06-02T11:00:00Z", slots[0].StartISO)
	})

	t.Run("today on the hour still moves to the next hour", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)
		slots, err := BuildDaySlots(workday, testMonday, 30, 15, now, loc)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.Equal(t, "2025-06-02T11:00:00Z", slots[0].StartISO)
	})

	t.Run("late evening today leaves nothing", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 23, 30, 0, 0, loc)
		slots, err := BuildDaySlots(workday, testMonday, 30, 15, now, loc)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("non positive duration or step", func(t *testing.T) {
		slots, err := BuildDaySlots(workday, testMonday, 0, 15, otherDay, loc)
		require.NoError(t, err)
		assert.Empty(t, slots)

		slots, err = BuildDaySlots(workday, testMonday, 30, 0, otherDay, loc)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}
