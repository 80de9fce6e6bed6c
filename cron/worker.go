package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"salonbooking/config"
	scheduleSvc "salonbooking/services/schedule"
)

const TypeScheduleSync = "schedule:sync"

// InitScheduleSyncWorker runs the background sync of the schedule sheet into
// the Mongo mirror. The worker and its periodic enqueuer both run detached;
// request handling never waits on them.
func InitScheduleSyncWorker(schedSvc scheduleSvc.ScheduleService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSyncQueue,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleSync, handleScheduleSync(schedSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ScheduleSync] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleSync] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleSync] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

func handleScheduleSync(schedSvc scheduleSvc.ScheduleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := schedSvc.SyncFromSource(ctx); err != nil {
			log.Printf("[ScheduleSync] Sync failed: %v", err)
			return err
		}
		return nil
	}
}

// runScheduler enqueues the sync task on the configured interval.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	spec := fmt.Sprintf("@every %dm", config.AppConfig.ScheduleSyncMinutes)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeScheduleSync, nil)); err != nil {
		log.Printf("[ScheduleSync] Failed to register periodic sync: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[ScheduleSync] Scheduler stopped: %v", err)
	}
}
