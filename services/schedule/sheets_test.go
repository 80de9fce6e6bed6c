package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonbooking/models"
)

func TestWeeklyFromRows(t *testing.T) {
	rows := [][]interface{}{
		{"Monday", "09:00-18:00", ""},
		{"tuesday", "10:00-19:00", "false"},
		{"SUNDAY", "", "yes"},
		{"someday", "09:00-18:00", ""}, // bogus day cell
		{},                             // empty row
		{"friday"},                     // hours and flag cells missing
	}

	weekly := weeklyFromRows(rows)

	assert.Equal(t, models.WeeklySchedule{
		"monday":  {Hours: "09:00-18:00"},
		"tuesday": {Hours: "10:00-19:00"},
		"sunday":  {IsDayOff: true},
		"friday":  {},
	}, weekly)
}

func TestExceptionsFromRows(t *testing.T) {
	rows := [][]interface{}{
		{"2025-06-02", "", "true"},
		{"2025-06-09", "12:00-16:00", "no"},
		{"June 2nd", "09:00-18:00", ""}, // not an ISO date
		{"", "", ""},
	}

	exceptions := exceptionsFromRows(rows)

	assert.Equal(t, models.ExceptionSchedule{
		"2025-06-02": {IsDayOff: true},
		"2025-06-09": {Hours: "12:00-16:00"},
	}, exceptions)
}

func TestCellHelpers(t *testing.T) {
	row := []interface{}{" padded ", 42, "TRUE"}

	assert.Equal(t, "padded", cellString(row, 0))
	assert.Equal(t, "", cellString(row, 1)) // non-string cell
	assert.Equal(t, "", cellString(row, 9))

	assert.True(t, cellBool(row, 2))
	assert.True(t, cellBool([]interface{}{"y"}, 0))
	assert.True(t, cellBool([]interface{}{"1"}, 0))
	assert.False(t, cellBool([]interface{}{"nope"}, 0))
	assert.False(t, cellBool(row, 9))
}
