package models

// ScheduleEntry describes one day's working hours, either recurring (keyed by
// lowercase English weekday) or a date exception (keyed by "2006-01-02").
// Hours is free text in the "HH:MM-HH:MM, HH:MM-HH:MM" grammar.
type ScheduleEntry struct {
	Hours    string `bson:"hours" json:"hours"`
	IsDayOff bool   `bson:"isDayOff" json:"isDayOff"`
}

// WeeklySchedule maps lowercase weekday names to their recurring entry.
// An absent weekday means the salon is closed that day.
type WeeklySchedule map[string]ScheduleEntry

// ExceptionSchedule maps ISO dates to date-specific overrides. A present
// exception overrides the weekly entry field-by-field: non-empty Hours replaces
// the weekly hours, IsDayOff always replaces the weekly flag.
type ExceptionSchedule map[string]ScheduleEntry

// WeeklyScheduleDoc is the MongoDB document shape for a recurring entry.
type WeeklyScheduleDoc struct {
	Day      string `bson:"day"`
	Hours    string `bson:"hours"`
	IsDayOff bool   `bson:"isDayOff"`
}

// ExceptionDoc is the MongoDB document shape for a date exception.
type ExceptionDoc struct {
	Date     string `bson:"date"`
	Hours    string `bson:"hours"`
	IsDayOff bool   `bson:"isDayOff"`
}
