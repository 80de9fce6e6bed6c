package models

// Slot is a concrete bookable window offered to a client. End − Start always
// equals the requested duration and the whole slot lies inside one free range.
type Slot struct {
	StartISO string `json:"startISO"` // RFC3339, business time zone
	EndISO   string `json:"endISO"`
}

// DayAvailability says whether a date has at least one bookable window of the
// requested duration.
type DayAvailability struct {
	Date          string `json:"date"`
	HasOpenWindow bool   `json:"hasOpenWindow"`
}
