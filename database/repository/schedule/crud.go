// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonbooking/models"
)

func (r *mongoScheduleRepo) GetWeeklySchedule(ctx context.Context) (models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.weekly.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.WeeklyScheduleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	weekly := make(models.WeeklySchedule, len(docs))
	for _, doc := range docs {
		weekly[doc.Day] = models.ScheduleEntry{Hours: doc.Hours, IsDayOff: doc.IsDayOff}
	}
	return weekly, nil
}

func (r *mongoScheduleRepo) GetExceptions(ctx context.Context) (models.ExceptionSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.exceptions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.ExceptionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	exceptions := make(models.ExceptionSchedule, len(docs))
	for _, doc := range docs {
		exceptions[doc.Date] = models.ScheduleEntry{Hours: doc.Hours, IsDayOff: doc.IsDayOff}
	}
	return exceptions, nil
}

func (r *mongoScheduleRepo) UpsertWeeklyEntry(ctx context.Context, day string, entry models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"day": day}
	update := bson.M{"$set": bson.M{"hours": entry.Hours, "isDayOff": entry.IsDayOff}}
	_, err := r.weekly.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoScheduleRepo) UpsertException(ctx context.Context, date string, entry models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date}
	update := bson.M{"$set": bson.M{"hours": entry.Hours, "isDayOff": entry.IsDayOff}}
	_, err := r.exceptions.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoScheduleRepo) DeleteException(ctx context.Context, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.exceptions.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ReplaceAll swaps the whole mirror in one pass. Used by the sheet sync worker;
// admin edits between two syncs are overwritten by the sheet on purpose.
func (r *mongoScheduleRepo) ReplaceAll(ctx context.Context, weekly models.WeeklySchedule, exceptions models.ExceptionSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.weekly.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(weekly) > 0 {
		docs := make([]interface{}, 0, len(weekly))
		for day, entry := range weekly {
			docs = append(docs, models.WeeklyScheduleDoc{Day: day, Hours: entry.Hours, IsDayOff: entry.IsDayOff})
		}
		if _, err := r.weekly.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	if _, err := r.exceptions.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(exceptions) > 0 {
		docs := make([]interface{}, 0, len(exceptions))
		for date, entry := range exceptions {
			docs = append(docs, models.ExceptionDoc{Date: date, Hours: entry.Hours, IsDayOff: entry.IsDayOff})
		}
		if _, err := r.exceptions.InsertMany(ctx, docs); err != nil {
			return err
		}
	}
	return nil
}
