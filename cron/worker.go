package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"studyrooms/config"
	"studyrooms/scraper"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeScrapeRun = "scrape:run"

// InitScrapeWorker runs the async scrape worker in background and
// schedules periodic runs, replacing an external cron invocation.
func InitScrapeWorker(runner *scraper.Runner) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// One scrape at a time; overlapping runs would race on the sink.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScrapeRun, handleScrapeTask(runner))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	interval := config.AppConfig.ScrapeIntervalMinutes
	if interval <= 0 {
		interval = 60
	}
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", interval),
		asynq.NewTask(TypeScrapeRun, nil),
	); err != nil {
		log.Fatalf("[ScrapeWorker] failed to register periodic scrape: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ScrapeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScrapeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScrapeWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ScrapeWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleScrapeTask(runner *scraper.Runner) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Println("[ScrapeWorker] scrape run triggered")
		if err := runner.Run(ctx); err != nil {
			log.Printf("[ScrapeWorker] scrape run failed: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ScrapeWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
