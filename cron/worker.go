package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotify/config"
	"slotify/models"
	"slotify/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitEventWorker runs the async worker in background, draining booking
// events enqueued by the scheduling core.
func InitEventWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventQueueDB,
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
	mux.HandleFunc(notification.TaskTypeBookingEvent, handleBookingEventTask)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[EventWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EventWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EventWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingEventTask(ctx context.Context, task *asynq.Task) error {
	var event models.BookingEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		log.Printf("[EventHandler] Invalid payload: %v", err)
		return err
	}

	// Delivery targets (email, push) hang off this switch; for now the worker
	// records the event so downstream channels can be attached per type.
	switch event.Type {
	case models.EventBookingCreated:
		log.Printf("[EventHandler] Booking %s created for provider %s on %s", event.BookingID, event.ProviderID, event.Date)
	case models.EventBookingStatus:
		log.Printf("[EventHandler] Booking %s moved to %s", event.BookingID, event.Status)
	case models.EventBookingRescheduled:
		log.Printf("[EventHandler] Booking %s rescheduled to %s", event.BookingID, event.Date)
	case models.EventBookingCancelled:
		log.Printf("[EventHandler] Booking %s cancelled", event.BookingID)
	default:
		log.Printf("[EventHandler] Unknown event type: %s", event.Type)
	}
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[EventWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
