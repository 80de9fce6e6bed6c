package schedule

import "errors"

// ErrUnknownWeekday is returned when an admin edit names a day that is not a
// lowercase English weekday.
var ErrUnknownWeekday = errors.New("unknown weekday name")

// ErrNoSource is returned when a sync is requested but no schedule source is
// configured.
var ErrNoSource = errors.New("no schedule source configured")
