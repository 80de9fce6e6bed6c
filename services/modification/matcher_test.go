package modification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/models"
)

func TestExcludeOwnInterval(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	own := models.BusyInterval{Start: start, End: end, EventID: "evt-1"}
	other := models.BusyInterval{Start: end, End: end.Add(time.Hour), EventID: "evt-2"}

	t.Run("event id match is authoritative", func(t *testing.T) {
		others := ExcludeOwnInterval([]models.BusyInterval{own, other}, "evt-1", start, end)
		require.Len(t, others, 1)
		assert.Equal(t, "evt-2", others[0].EventID)
	})

	t.Run("id mismatch keeps interval even at identical times", func(t *testing.T) {
		twin := models.BusyInterval{Start: start, End: end, EventID: "evt-9"}
		others := ExcludeOwnInterval([]models.BusyInterval{twin}, "evt-1", start, end)
		assert.Len(t, others, 1)
	})

	t.Run("time fallback when interval has no id", func(t *testing.T) {
		legacy := models.BusyInterval{Start: start, End: end}
		others := ExcludeOwnInterval([]models.BusyInterval{legacy, other}, "evt-1", start, end)
		require.Len(t, others, 1)
		assert.Equal(t, "evt-2", others[0].EventID)
	})

	t.Run("time fallback tolerates sub second drift", func(t *testing.T) {
		legacy := models.BusyInterval{Start: start.Add(500 * time.Millisecond), End: end.Add(-300 * time.Millisecond)}
		others := ExcludeOwnInterval([]models.BusyInterval{legacy}, "evt-1", start, end)
		assert.Empty(t, others)
	})

	t.Run("time fallback rejects larger drift", func(t *testing.T) {
		legacy := models.BusyInterval{Start: start.Add(2 * time.Second), End: end}
		others := ExcludeOwnInterval([]models.BusyInterval{legacy}, "evt-1", start, end)
		assert.Len(t, others, 1)
	})

	t.Run("empty busy set", func(t *testing.T) {
		assert.Empty(t, ExcludeOwnInterval(nil, "evt-1", start, end))
	})
}
