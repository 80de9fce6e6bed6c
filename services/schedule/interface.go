package schedule

import (
	"context"

	"salonbooking/models"
)

// ScheduleSource reads the authoritative schedule rows (the owner's Google
// Sheet). Implementations return the full snapshot on every call.
type ScheduleSource interface {
	ReadWeeklySchedule(ctx context.Context) (models.WeeklySchedule, error)
	ReadExceptions(ctx context.Context) (models.ExceptionSchedule, error)
}

// ScheduleService serves schedule snapshots to the availability engine and lets
// the admin surface edit the local mirror.
type ScheduleService interface {
	WeeklySchedule(ctx context.Context) (models.WeeklySchedule, error)
	Exceptions(ctx context.Context) (models.ExceptionSchedule, error)
	UpdateWeeklyEntry(ctx context.Context, day string, entry models.ScheduleEntry) error
	UpsertException(ctx context.Context, date string, entry models.ScheduleEntry) error
	RemoveException(ctx context.Context, date string) error
	SyncFromSource(ctx context.Context) error
}
