package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/models"
)

// 2025-06-02 is a Monday.
const (
	testMonday  = "2025-06-02"
	testTuesday = "2025-06-03"
)

func baseWeekly() models.WeeklySchedule {
	return models.WeeklySchedule{
		"monday":  {Hours: "09:00-18:00"},
		"tuesday": {Hours: "10:00-19:00"},
		"sunday":  {IsDayOff: true},
	}
}

func TestResolveDayEntry(t *testing.T) {
	loc := time.UTC

	t.Run("plain weekday entry", func(t *testing.T) {
		entry, err := ResolveDayEntry(baseWeekly(), nil, testMonday, loc)
		require.NoError(t, err)
		assert.Equal(t, models.ScheduleEntry{Hours: "09:00-18:00"}, entry)
	})

	t.Run("weekday absent from schedule means day off", func(t *testing.T) {
		entry, err := ResolveDayEntry(models.WeeklySchedule{}, nil, testMonday, loc)
		require.NoError(t, err)
		assert.True(t, entry.IsDayOff)
	})

	t.Run("exception replaces hours", func(t *testing.T) {
		exc := models.ExceptionSchedule{testMonday: {Hours: "12:00-16:00"}}
		entry, err := ResolveDayEntry(baseWeekly(), exc, testMonday, loc)
		require.NoError(t, err)
		assert.Equal(t, "12:00-16:00", entry.Hours)
		assert.False(t, entry.IsDayOff)
	})

	t.Run("exception closes a working day", func(t *testing.T) {
		exc := models.ExceptionSchedule{testMonday: {IsDayOff: true}}
		entry, err := ResolveDayEntry(baseWeekly(), exc, testMonday, loc)
		require.NoError(t, err)
		assert.True(t, entry.IsDayOff)
		// Weekly hours carry through untouched when the exception has none.
		assert.Equal(t, "09:00-18:00", entry.Hours)
	})

	t.Run("exception opens a day off", func(t *testing.T) {
		weekly := models.WeeklySchedule{"monday": {IsDayOff: true}}
		exc := models.ExceptionSchedule{testMonday: {Hours: "10:00-14:00", IsDayOff: false}}
		entry, err := ResolveDayEntry(weekly, exc, testMonday, loc)
		require.NoError(t, err)
		assert.False(t, entry.IsDayOff)
		assert.Equal(t, "10:00-14:00", entry.Hours)
	})

	t.Run("exception on another date does not leak", func(t *testing.T) {
		exc := models.ExceptionSchedule{testMonday: {IsDayOff: true}}
		entry, err := ResolveDayEntry(baseWeekly(), exc, testTuesday, loc)
		require.NoError(t, err)
		assert.False(t, entry.IsDayOff)
		assert.Equal(t, "10:00-19:00", entry.Hours)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := ResolveDayEntry(baseWeekly(), nil, "02.06.2025", loc)
		assert.Error(t, err)
	})
}

func TestResolveOpenRanges(t *testing.T) {
	loc := time.UTC

	t.Run("working day yields parsed ranges", func(t *testing.T) {
		ranges, err := ResolveOpenRanges(baseWeekly(), nil, testMonday, loc)
		require.NoError(t, err)
		assert.Equal(t, []models.TimeRange{{Start: 540, End: 1080}}, ranges)
	})

	t.Run("day off yields nothing", func(t *testing.T) {
		exc := models.ExceptionSchedule{testMonday: {IsDayOff: true}}
		ranges, err := ResolveOpenRanges(baseWeekly(), exc, testMonday, loc)
		require.NoError(t, err)
		assert.Nil(t, ranges)
	})

	t.Run("unparseable hours degrade to closed", func(t *testing.T) {
		weekly := models.WeeklySchedule{"monday": {Hours: "by appointment"}}
		ranges, err := ResolveOpenRanges(weekly, nil, testMonday, loc)
		require.NoError(t, err)
		assert.Empty(t, ranges)
	})
}
