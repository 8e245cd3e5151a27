// File: services/notification/asynq.go
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"slotify/config"
	"slotify/models"

	"github.com/hibiken/asynq"
)

// TaskTypeBookingEvent is the asynq task type carrying a BookingEvent
// payload. Consumed by the worker in cron/worker.go.
const TaskTypeBookingEvent = "booking:event"

// AsynqSink enqueues booking events onto the Redis-backed task queue for the
// notification worker to deliver.
type AsynqSink struct {
	client *asynq.Client
}

// NewAsynqSink constructs a sink backed by the configured event-queue Redis DB.
func NewAsynqSink() *AsynqSink {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventQueueDB,
	})
	return &AsynqSink{client: client}
}

func (s *AsynqSink) Publish(ctx context.Context, event models.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}
	task := asynq.NewTask(TaskTypeBookingEvent, payload)
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue booking event: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqSink) Close() error {
	return s.client.Close()
}
