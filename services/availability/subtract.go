package availability

import (
	"sort"

	"salonbooking/models"
)

// SubtractRanges removes busy coverage from the open ranges and returns the free
// ranges, sorted and pairwise non-overlapping. Busy ranges may overlap each
// other; the cursor only ever moves forward, so overlapping coverage merges
// naturally.
func SubtractRanges(open, busy []models.TimeRange) []models.TimeRange {
	if len(open) == 0 {
		return nil
	}

	sorted := make([]models.TimeRange, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var free []models.TimeRange
	for _, o := range open {
		cursor := o.Start
		for _, b := range sorted {
			if cursor >= o.End {
				break
			}
			if b.End <= cursor || b.Start >= o.End {
				continue
			}
			if b.Start > cursor {
				free = append(free, models.TimeRange{Start: cursor, End: b.Start})
			}
			if b.End > cursor {
				cursor = b.End
			}
		}
		if cursor < o.End {
			free = append(free, models.TimeRange{Start: cursor, End: o.End})
		}
	}
	return free
}
