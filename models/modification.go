package models

// Modification statuses. Exactly one is produced per evaluation.
const (
	ModificationCanExtend      = "can_extend"
	ModificationCanShiftBack   = "can_shift_back"
	ModificationNoAvailability = "no_availability"
)

// Machine-distinguishable reasons, so callers can explain the outcome instead of
// showing a generic failure.
const (
	ReasonBookingConflict     = "booking_conflict"
	ReasonScheduleBoundary    = "schedule_boundary"
	ReasonScheduleUnavailable = "schedule_unavailable"
)

// ModificationOutcome is the tagged result of evaluating a duration change.
// NewStart/NewEnd/ShiftMinutes are set only for can_shift_back.
type ModificationOutcome struct {
	Status       string `json:"status"`
	NewStartISO  string `json:"newStartISO,omitempty"`
	NewEndISO    string `json:"newEndISO,omitempty"`
	ShiftMinutes int    `json:"shiftMinutes,omitempty"`
	ReasonCode   string `json:"reasonCode,omitempty"`
	Reason       string `json:"reason,omitempty"`
}
