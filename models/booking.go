package models

import "time"

// BusyInterval is one occupied period on the external calendar. EventID is the
// only reliable way to recognise "this interval is the booking being modified";
// legacy records created outside the service may have none.
type BusyInterval struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	EventID string    `json:"eventId,omitempty"`
}

// Booking is an appointment held as a calendar event. The calendar owns it; the
// service only reads it and proposes new times.
type Booking struct {
	EventID   string    `json:"eventId"`
	Summary   string    `json:"summary,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// CreateBookingRequest is the payload for booking a slot.
type CreateBookingRequest struct {
	Date            string `json:"date" binding:"required"`      // "2006-01-02"
	StartISO        string `json:"startISO" binding:"required"`  // RFC3339
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	ClientName      string `json:"clientName" binding:"required"`
	ClientPhone     string `json:"clientPhone,omitempty"`
	Service         string `json:"service,omitempty"`
}

// CheckExtensionRequest asks whether an existing booking can grow to a new duration.
type CheckExtensionRequest struct {
	CurrentStartISO    string `json:"currentStartISO" binding:"required"`
	CurrentEndISO      string `json:"currentEndISO" binding:"required"`
	NewDurationMinutes int    `json:"newDurationMinutes" binding:"required"`
}

// ApplyExtensionRequest commits previously evaluated new times to the calendar.
type ApplyExtensionRequest struct {
	NewStartISO string `json:"newStartISO" binding:"required"`
	NewEndISO   string `json:"newEndISO" binding:"required"`
}
