package models

// MinutesPerDay is the upper bound for a minute-of-day value.
const MinutesPerDay = 24 * 60

// TimeRange is a half-open interval [Start, End) in minutes since local midnight.
type TimeRange struct {
	Start int `json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End   int `json:"end"`   // minutes from midnight (e.g., 1080 for 6:00 PM)
}

// Duration returns the range length in minutes.
func (r TimeRange) Duration() int {
	return r.End - r.Start
}

// Overlaps reports whether two half-open ranges share any minute.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// Contains reports whether [start, end) lies entirely inside the range.
func (r TimeRange) Contains(start, end int) bool {
	return r.Start <= start && end <= r.End
}
