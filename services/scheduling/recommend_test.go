package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

// seedCompleted inserts a completed booking on a past date, feeding customer
// history and provider demand.
func (e *testEnv) seedCompleted(t *testing.T, id, clock string, daysAgo int) {
	t.Helper()
	date := time.Now().AddDate(0, 0, -daysAgo).Format(dateLayout)
	interval, err := intervalFor(date, clock, 60)
	require.NoError(t, err)
	booking := &models.Booking{
		ID:         id,
		ProviderID: testProvider,
		CustomerID: testCustomer,
		ServiceID:  testService,
		Date:       date,
		Time:       clock,
		Duration:   60,
		Status:     models.StatusCompleted,
		Interval:   interval,
	}
	require.NoError(t, e.bookings.Create(context.Background(), booking))
}

func TestRecommendationsRankCustomerPreference(t *testing.T) {
	env := newTestEnv()
	date := nextDate(time.Monday)
	env.seedBooking(t, "bk-noon", date, "12:00", 60, models.StatusConfirmed)
	env.seedCompleted(t, "hist-1", "10:00", 7)
	env.seedCompleted(t, "hist-2", "10:00", 14)
	env.seedCompleted(t, "hist-3", "10:00", 21)

	scored, err := env.svc.GetRecommendations(context.Background(), RecommendationRequest{
		ProviderID: testProvider,
		CustomerID: testCustomer,
		ServiceID:  testService,
		Date:       date,
	})
	require.NoError(t, err)
	require.NotEmpty(t, scored)
	require.LessOrEqual(t, len(scored), 5)

	// Three prior 10:00 visits push 10:00 to the top.
	assert.Equal(t, "10:00", scored[0].Interval.TimeOfDay())
	assert.Equal(t, 24, scored[0].Factors.CustomerPreference)
	assert.Equal(t, 25, scored[0].Factors.Availability)

	// The occupied 12:00 slot is gated out entirely.
	for _, s := range scored {
		assert.NotEqual(t, "12:00", s.Interval.TimeOfDay())
	}
}

func TestRecommendationsPreferredTimeWins(t *testing.T) {
	env := newTestEnv()
	date := nextDate(time.Tuesday)

	scored, err := env.svc.GetRecommendations(context.Background(), RecommendationRequest{
		ProviderID:    testProvider,
		CustomerID:    testCustomer,
		ServiceID:     testService,
		Date:          date,
		PreferredTime: "15:30",
	})
	require.NoError(t, err)
	require.NotEmpty(t, scored)

	assert.Equal(t, "15:30", scored[0].Interval.TimeOfDay())
	assert.Equal(t, 30, scored[0].Factors.CustomerPreference)
	assert.Equal(t, "Matches your preferred time", scored[0].Reason)
}

func TestRecommendationsNeutralWithoutHistory(t *testing.T) {
	env := newTestEnv()
	date := nextDate(time.Wednesday)

	scored, err := env.svc.GetRecommendations(context.Background(), RecommendationRequest{
		ProviderID: testProvider,
		CustomerID: testCustomer,
		ServiceID:  testService,
		Date:       date,
	})
	require.NoError(t, err)
	require.Len(t, scored, 5)

	for _, s := range scored {
		assert.Equal(t, 10, s.Factors.CustomerPreference)
		assert.Equal(t, s.Factors.Total(), s.Score)
	}

	// Descending by score, ties broken by earliest start.
	for i := 1; i < len(scored); i++ {
		if scored[i-1].Score == scored[i].Score {
			assert.True(t, scored[i-1].Interval.Start.Before(scored[i].Interval.Start))
		} else {
			assert.Greater(t, scored[i-1].Score, scored[i].Score)
		}
	}
}

func TestRecommendationsHistoricalDemand(t *testing.T) {
	env := newTestEnv()
	date := nextDate(time.Thursday)
	// Six completed 14:00 bookings cap the demand factor at 15.
	for i := 0; i < 6; i++ {
		env.seedCompleted(t, "demand-"+string(rune('a'+i)), "14:00", 7*(i+1))
	}

	scored, err := env.svc.GetRecommendations(context.Background(), RecommendationRequest{
		ProviderID: testProvider,
		CustomerID: "cust-other",
		ServiceID:  testService,
		Date:       date,
	})
	require.NoError(t, err)

	var found bool
	for _, s := range scored {
		if s.Interval.TimeOfDay() == "14:00" {
			found = true
			assert.Equal(t, 15, s.Factors.HistoricalDemand)
		}
	}
	assert.True(t, found, "the in-demand 14:00 slot should rank in the top 5")
}

func TestRecommendationsBufferSpacing(t *testing.T) {
	env := newTestEnv()
	date := nextDate(time.Friday)
	env.seedBooking(t, "bk-ten", date, "10:00", 60, models.StatusConfirmed)

	active, err := env.bookings.GetActiveBookings(context.Background(), testProvider, date)
	require.NoError(t, err)

	// Adjacent on one side only.
	adjacent := mustIntervalOn(t, date, "11:00", 60)
	assert.Equal(t, 5, bufferScore(adjacent, active))

	// Clear on both sides.
	spaced := mustIntervalOn(t, date, "14:00", 60)
	assert.Equal(t, 10, bufferScore(spaced, active))
}

func mustIntervalOn(t *testing.T, date, clock string, durationMin int) models.TimeInterval {
	t.Helper()
	iv, err := intervalFor(date, clock, durationMin)
	require.NoError(t, err)
	return iv
}

func TestRecommendationsClosedDay(t *testing.T) {
	env := newTestEnv()

	scored, err := env.svc.GetRecommendations(context.Background(), RecommendationRequest{
		ProviderID: testProvider,
		CustomerID: testCustomer,
		ServiceID:  testService,
		Date:       nextDate(time.Sunday),
	})
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestRecommendationsDeterministic(t *testing.T) {
	env := newTestEnv()
	date := nextDate(time.Monday)
	env.seedBooking(t, "bk-noon", date, "12:00", 60, models.StatusConfirmed)
	env.seedCompleted(t, "hist-1", "10:00", 7)

	req := RecommendationRequest{
		ProviderID: testProvider,
		CustomerID: testCustomer,
		ServiceID:  testService,
		Date:       date,
	}
	first, err := env.svc.GetRecommendations(context.Background(), req)
	require.NoError(t, err)
	second, err := env.svc.GetRecommendations(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
