package availability

import (
	"sort"
	"strconv"
	"strings"

	"salonbooking/models"
)

// rangeSeparators are the dash variants owners actually type into the schedule
// sheet. Both plain hyphen and en-dash split a "HH:MM-HH:MM" piece.
var rangeSeparators = []string{"–", "-"}

// ParseRanges parses schedule text in the "HH:MM-HH:MM, HH:MM-HH:MM" grammar
// into minute-of-day ranges. Clock values may also use a dot ("9.30"). Malformed
// or non-positive pieces are dropped silently: bad schedule text degrades to "no
// open ranges" for the day instead of failing the request.
func ParseRanges(text string) []models.TimeRange {
	var ranges []models.TimeRange

	for _, piece := range strings.Split(text, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		var sides []string
		for _, sep := range rangeSeparators {
			if strings.Contains(piece, sep) {
				sides = strings.SplitN(piece, sep, 2)
				break
			}
		}
		if len(sides) != 2 {
			continue
		}

		start, okStart := parseClock(sides[0])
		end, okEnd := parseClock(sides[1])
		if !okStart || !okEnd {
			continue
		}
		if end <= start {
			continue
		}
		ranges = append(ranges, models.TimeRange{Start: start, End: end})
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

// parseClock converts "HH:MM" or "HH.MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	total := hours*60 + minutes
	if total > models.MinutesPerDay {
		return 0, false
	}
	return total, true
}
