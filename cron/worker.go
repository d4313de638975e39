package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"miohost/config"
	"miohost/services/notification"
	"miohost/utils"
)

// deskFeedCap bounds the notification feed list.
const deskFeedCap = 200

// InitDeskWorker runs the async desk-notification worker in background.
func InitDeskWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeDeskNotify, handleDeskTask)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[DeskWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DeskWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DeskWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleDeskTask appends the notification to the desk feed, trimming it
// to the newest entries.
func handleDeskTask(ctx context.Context, task *asynq.Task) error {
	var note notification.DeskNotification
	if err := json.Unmarshal(task.Payload(), &note); err != nil {
		log.Printf("[DeskHandler] Invalid payload: %v", err)
		return err
	}

	log.Printf("[DeskHandler] %s %s from room %s: %s", note.Kind, note.RefID, note.Room, note.Summary)

	client := utils.GetCacheClient()
	pipe := client.Pipeline()
	pipe.LPush(ctx, notification.DeskFeedKey, task.Payload())
	pipe.LTrim(ctx, notification.DeskFeedKey, 0, deskFeedCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[DeskHandler] Failed to record notification: %v", err)
		return err
	}
	return nil
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
			log.Printf("[DeskWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
