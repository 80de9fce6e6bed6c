package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/models"
)

type memoryRepo struct {
	weekly     models.WeeklySchedule
	exceptions models.ExceptionSchedule
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		weekly:     make(models.WeeklySchedule),
		exceptions: make(models.ExceptionSchedule),
	}
}

func (r *memoryRepo) GetWeeklySchedule(context.Context) (models.WeeklySchedule, error) {
	return r.weekly, nil
}

func (r *memoryRepo) GetExceptions(context.Context) (models.ExceptionSchedule, error) {
	return r.exceptions, nil
}

func (r *memoryRepo) UpsertWeeklyEntry(_ context.Context, day string, entry models.ScheduleEntry) error {
	r.weekly[day] = entry
	return nil
}

func (r *memoryRepo) UpsertException(_ context.Context, date string, entry models.ScheduleEntry) error {
	r.exceptions[date] = entry
	return nil
}

func (r *memoryRepo) DeleteException(_ context.Context, date string) error {
	delete(r.exceptions, date)
	return nil
}

func (r *memoryRepo) ReplaceAll(_ context.Context, weekly models.WeeklySchedule, exceptions models.ExceptionSchedule) error {
	r.weekly = weekly
	r.exceptions = exceptions
	return nil
}

type memorySource struct {
	weekly     models.WeeklySchedule
	exceptions models.ExceptionSchedule
}

func (s *memorySource) ReadWeeklySchedule(context.Context) (models.WeeklySchedule, error) {
	return s.weekly, nil
}

func (s *memorySource) ReadExceptions(context.Context) (models.ExceptionSchedule, error) {
	return s.exceptions, nil
}

func TestUpdateWeeklyEntry(t *testing.T) {
	repo := newMemoryRepo()
	svc := &DefaultScheduleService{Repo: repo}
	ctx := context.Background()

	err := svc.UpdateWeeklyEntry(ctx, "monday", models.ScheduleEntry{Hours: "09:00-18:00"})
	require.NoError(t, err)
	assert.Equal(t, "09:00-18:00", repo.weekly["monday"].Hours)

	err = svc.UpdateWeeklyEntry(ctx, "funday", models.ScheduleEntry{Hours: "09:00-18:00"})
	assert.ErrorIs(t, err, ErrUnknownWeekday)
	assert.NotContains(t, repo.weekly, "funday")
}

func TestExceptionLifecycle(t *testing.T) {
	repo := newMemoryRepo()
	svc := &DefaultScheduleService{Repo: repo}
	ctx := context.Background()

	require.NoError(t, svc.UpsertException(ctx, "2025-06-02", models.ScheduleEntry{IsDayOff: true}))

	exceptions, err := svc.Exceptions(ctx)
	require.NoError(t, err)
	assert.True(t, exceptions["2025-06-02"].IsDayOff)

	require.NoError(t, svc.RemoveException(ctx, "2025-06-02"))

	exceptions, err = svc.Exceptions(ctx)
	require.NoError(t, err)
	assert.NotContains(t, exceptions, "2025-06-02")
}

func TestSyncFromSource(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the mirror wholesale", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.weekly["monday"] = models.ScheduleEntry{Hours: "08:00-16:00"}
		repo.exceptions["2025-01-01"] = models.ScheduleEntry{IsDayOff: true}

		svc := &DefaultScheduleService{
			Repo: repo,
			Source: &memorySource{
				weekly:     models.WeeklySchedule{"tuesday": {Hours: "10:00-19:00"}},
				exceptions: models.ExceptionSchedule{"2025-06-02": {IsDayOff: true}},
			},
		}

		require.NoError(t, svc.SyncFromSource(ctx))

		assert.NotContains(t, repo.weekly, "monday")
		assert.Equal(t, "10:00-19:00", repo.weekly["tuesday"].Hours)
		assert.NotContains(t, repo.exceptions, "2025-01-01")
		assert.Contains(t, repo.exceptions, "2025-06-02")
	})

	t.Run("no source configured", func(t *testing.T) {
		svc := &DefaultScheduleService{Repo: newMemoryRepo()}
		assert.ErrorIs(t, svc.SyncFromSource(ctx), ErrNoSource)
	})
}
