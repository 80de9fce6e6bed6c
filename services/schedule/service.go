package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	scheduleRepo "salonbooking/database/repository/schedule"
	"salonbooking/models"
	"salonbooking/utils"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// DefaultScheduleService reads the Mongo mirror behind a Redis cache with a
// caller-controlled TTL. The availability engine itself stays pure; every bit of
// caching lives here.
type DefaultScheduleService struct {
	Repo   scheduleRepo.ScheduleRepository
	Source ScheduleSource // optional; nil disables syncing
	Cache  *redis.Client
	TTL    time.Duration
}

func (s *DefaultScheduleService) WeeklySchedule(ctx context.Context) (models.WeeklySchedule, error) {
	var weekly models.WeeklySchedule
	if s.cacheGet(ctx, utils.WeeklyCacheKey, &weekly) {
		return weekly, nil
	}

	weekly, err := s.Repo.GetWeeklySchedule(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, utils.WeeklyCacheKey, weekly)
	return weekly, nil
}

func (s *DefaultScheduleService) Exceptions(ctx context.Context) (models.ExceptionSchedule, error) {
	var exceptions models.ExceptionSchedule
	if s.cacheGet(ctx, utils.ExceptionsCacheKey, &exceptions) {
		return exceptions, nil
	}

	exceptions, err := s.Repo.GetExceptions(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, utils.ExceptionsCacheKey, exceptions)
	return exceptions, nil
}

func (s *DefaultScheduleService) UpdateWeeklyEntry(ctx context.Context, day string, entry models.ScheduleEntry) error {
	if !weekdays[day] {
		return ErrUnknownWeekday
	}
	if err := s.Repo.UpsertWeeklyEntry(ctx, day, entry); err != nil {
		return err
	}
	s.invalidate(ctx, utils.WeeklyCacheKey)
	return nil
}

func (s *DefaultScheduleService) UpsertException(ctx context.Context, date string, entry models.ScheduleEntry) error {
	if err := s.Repo.UpsertException(ctx, date, entry); err != nil {
		return err
	}
	s.invalidate(ctx, utils.ExceptionsCacheKey)
	return nil
}

func (s *DefaultScheduleService) RemoveException(ctx context.Context, date string) error {
	if err := s.Repo.DeleteException(ctx, date); err != nil {
		return err
	}
	s.invalidate(ctx, utils.ExceptionsCacheKey)
	return nil
}

// SyncFromSource replaces the Mongo mirror with the current sheet contents and
// drops the cache so the next read sees fresh data.
func (s *DefaultScheduleService) SyncFromSource(ctx context.Context) error {
	if s.Source == nil {
		return ErrNoSource
	}

	weekly, err := s.Source.ReadWeeklySchedule(ctx)
	if err != nil {
		return err
	}
	exceptions, err := s.Source.ReadExceptions(ctx)
	if err != nil {
		return err
	}

	if err := s.Repo.ReplaceAll(ctx, weekly, exceptions); err != nil {
		return err
	}
	s.invalidate(ctx, utils.WeeklyCacheKey)
	s.invalidate(ctx, utils.ExceptionsCacheKey)

	utils.GetLogger().Info("Schedule mirror synced",
		zap.Int("weeklyEntries", len(weekly)),
		zap.Int("exceptions", len(exceptions)))
	return nil
}

func (s *DefaultScheduleService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.Cache == nil {
		return false
	}
	raw, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func (s *DefaultScheduleService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, raw, s.TTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache schedule snapshot", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, key string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate schedule cache", zap.String("key", key), zap.Error(err))
	}
}
