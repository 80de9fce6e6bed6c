package availability

import "errors"

var (
	// ErrInvalidDate is returned for dates not in "2006-01-02" form or ranges
	// where the end precedes the start.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDuration is returned for non-positive durations.
	ErrInvalidDuration = errors.New("duration must be positive")
)
