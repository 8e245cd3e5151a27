// File: services/scheduling/availability.go
package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

// GetAvailableSlots computes the maximal set of bookable candidate intervals
// for a provider on a date. Candidates start at granularity offsets from the
// day's open time, fit the requested duration fully inside the open window
// and overlap none of the provider's non-cancelled bookings for that date.
// A day marked closed yields Closed=true, distinct from a fully booked day.
func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, providerID, date string, durationMin int) (*models.DayAvailability, error) {
	if durationMin < int(SlotGranularity.Minutes()) {
		return nil, &ValidationError{Field: "duration", Message: "duration is below the minimum slot granularity"}
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("avail:%s:%s:%d", providerID, date, durationMin)
	if cached := s.cachedAvailability(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	hours, err := s.ProviderRepo.GetWorkingHours(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if hours == nil {
		return nil, &NotFoundError{Resource: "provider", ID: providerID}
	}

	dayHours := hours.ForWeekday(day.Weekday())
	if !dayHours.IsOpen {
		return &models.DayAvailability{Date: date, Closed: true}, nil
	}

	openAt, err := clockOn(day, dayHours.Open)
	if err != nil {
		return nil, err
	}
	closeAt, err := clockOn(day, dayHours.Close)
	if err != nil {
		return nil, err
	}

	// The day's conflict set is loaded once, not per candidate.
	bookings, err := s.BookingRepo.GetActiveBookings(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMin) * time.Minute
	var slots []models.TimeInterval
	for start := openAt; !start.Add(duration).After(closeAt); start = start.Add(SlotGranularity) {
		candidate := models.TimeInterval{Start: start, End: start.Add(duration)}
		if len(FindConflicts(candidate, bookings, "")) == 0 {
			slots = append(slots, candidate)
		}
	}

	result := &models.DayAvailability{Date: date, Slots: slots}
	s.cacheAvailability(ctx, cacheKey, result)
	return result, nil
}

// cachedAvailability serves a recent snapshot from Redis. Staleness of a few
// bookings is acceptable: the write-time conflict check is the authority.
func (s *DefaultSchedulingService) cachedAvailability(ctx context.Context, key string) *models.DayAvailability {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var cached models.DayAvailability
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *DefaultSchedulingService) cacheAvailability(ctx context.Context, key string, result *models.DayAvailability) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("key", key), zap.Error(err))
	}
}
