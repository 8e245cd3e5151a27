package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the snapshot served by the /health endpoint.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	healthMu     sync.RWMutex
	latestHealth HealthStatus
)

// GetHealthStatus returns the most recent snapshot. A zero CheckedAt means
// the monitor has not completed a sweep yet.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return latestHealth
}

// StartHealthMonitor pings the given backends once a minute and keeps the
// snapshot current for the health endpoint.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			redisUp := make([]bool, 0, len(redisClients))
			for _, client := range redisClients {
				redisUp = append(redisUp, client.Ping(ctx).Err() == nil)
			}

			snapshot := HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Redis:     redisUp,
				CheckedAt: time.Now(),
			}

			healthMu.Lock()
			latestHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
