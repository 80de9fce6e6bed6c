package calendar

import "errors"

// ErrEventNotFound is returned when the calendar has no event with the given ID.
var ErrEventNotFound = errors.New("calendar event not found")
