// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"slotify/models"
)

// CountCompletedByTimeOfDay groups the provider's completed bookings by their
// start clock time ("HH:MM"). Feeds the historical-demand recommendation
// factor.
func (r *mongoBookingRepo) CountCompletedByTimeOfDay(ctx context.Context, providerID string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"provider_id": providerID,
			"status":      models.StatusCompleted,
		}},
		{"$group": bson.M{
			"_id":   "$time",
			"count": bson.M{"$sum": 1},
		}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate completed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Time  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode demand aggregates: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Time] = row.Count
	}
	return counts, nil
}
