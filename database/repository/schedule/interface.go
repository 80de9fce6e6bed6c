// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbooking/database"
	"salonbooking/models"
)

// ScheduleRepository persists the local mirror of the salon schedule: the
// recurring weekly entries plus date exceptions.
type ScheduleRepository interface {
	GetWeeklySchedule(ctx context.Context) (models.WeeklySchedule, error)
	GetExceptions(ctx context.Context) (models.ExceptionSchedule, error)
	UpsertWeeklyEntry(ctx context.Context, day string, entry models.ScheduleEntry) error
	UpsertException(ctx context.Context, date string, entry models.ScheduleEntry) error
	DeleteException(ctx context.Context, date string) error
	ReplaceAll(ctx context.Context, weekly models.WeeklySchedule, exceptions models.ExceptionSchedule) error
}

type mongoScheduleRepo struct {
	weekly     *mongo.Collection
	exceptions *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("salonbooking")
	return &mongoScheduleRepo{
		weekly:     db.Collection("weekly_schedule"),
		exceptions: db.Collection("schedule_exceptions"),
	}
}
