// File: services/scheduling/recommend.go
package scheduling

import (
	"context"
	"sort"

	"slotify/models"
)

const (
	maxRecommendations = 5
	historyWindow      = 5

	availabilityPoints    = 25
	preferredMatchPoints  = 30
	preferencePerBooking  = 8
	preferencePointsCap   = 25
	preferenceNeutral     = 10
	primeHoursPoints      = 20
	shoulderHoursPoints   = 15
	offPeakPoints         = 5
	demandPerBooking      = 3
	demandPointsCap       = 15
	bufferBothSidesPoints = 10
	bufferOneSidePoints   = 5
)

// GetRecommendations ranks the availability calculator's candidates for a
// date against customer history and provider demand, returning up to five
// scored slots. Pure function of its inputs: the same booking-history
// snapshot always yields the same ranking.
func (s *DefaultSchedulingService) GetRecommendations(ctx context.Context, req RecommendationRequest) ([]models.ScoredSlot, error) {
	service, err := s.ServiceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil || service.ProviderID != req.ProviderID {
		return nil, &NotFoundError{Resource: "service", ID: req.ServiceID}
	}

	availability, err := s.GetAvailableSlots(ctx, req.ProviderID, req.Date, service.Duration)
	if err != nil {
		return nil, err
	}
	if availability.Closed || len(availability.Slots) == 0 {
		return nil, nil
	}

	history, err := s.BookingRepo.GetCustomerHistory(ctx, req.CustomerID, historyWindow)
	if err != nil {
		return nil, err
	}
	demand, err := s.BookingRepo.CountCompletedByTimeOfDay(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	active, err := s.BookingRepo.GetActiveBookings(ctx, req.ProviderID, req.Date)
	if err != nil {
		return nil, err
	}

	scored := make([]models.ScoredSlot, 0, len(availability.Slots))
	for _, slot := range availability.Slots {
		factors := scoreSlot(slot, req.PreferredTime, history, demand, active)
		scored = append(scored, models.ScoredSlot{
			Interval: slot,
			Score:    factors.Total(),
			Factors:  factors,
			Reason:   reasonFor(slot, req.PreferredTime, factors),
		})
	}

	// Descending by score, ties broken by earliest start.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Interval.Start.Before(scored[j].Interval.Start)
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored, nil
}

// scoreSlot computes the integer sub-scores for one candidate. Candidates
// reaching this point already passed the conflict gate, so availability is a
// flat award.
func scoreSlot(slot models.TimeInterval, preferred string, history []models.Booking, demand map[string]int, active []models.Booking) models.RecommendationFactors {
	timeOfDay := slot.TimeOfDay()

	factors := models.RecommendationFactors{
		Availability: availabilityPoints,
	}

	switch {
	case preferred != "" && timeOfDay == preferred:
		factors.CustomerPreference = preferredMatchPoints
	case len(history) > 0:
		repeats := 0
		for _, b := range history {
			if b.Time == timeOfDay {
				repeats++
			}
		}
		factors.CustomerPreference = min(preferencePointsCap, preferencePerBooking*repeats)
	default:
		factors.CustomerPreference = preferenceNeutral
	}

	hour := slot.Start.Hour()
	switch {
	case hour >= 10 && hour <= 14:
		factors.BusinessOptimal = primeHoursPoints
	case hour >= 9 && hour <= 16:
		factors.BusinessOptimal = shoulderHoursPoints
	default:
		factors.BusinessOptimal = offPeakPoints
	}

	factors.HistoricalDemand = min(demandPointsCap, demandPerBooking*demand[timeOfDay])
	factors.BufferTime = bufferScore(slot, active)

	return factors
}

// bufferScore rewards slots with at least one granularity step of clearance
// on both sides of the candidate, half points for one clear side.
func bufferScore(slot models.TimeInterval, active []models.Booking) int {
	before := models.TimeInterval{Start: slot.Start.Add(-SlotGranularity), End: slot.Start}
	after := models.TimeInterval{Start: slot.End, End: slot.End.Add(SlotGranularity)}

	beforeClear, afterClear := true, true
	for _, b := range active {
		if b.Interval.Overlaps(before) {
			beforeClear = false
		}
		if b.Interval.Overlaps(after) {
			afterClear = false
		}
	}

	switch {
	case beforeClear && afterClear:
		return bufferBothSidesPoints
	case beforeClear || afterClear:
		return bufferOneSidePoints
	default:
		return 0
	}
}

// reasonFor picks the headline for a recommendation from its dominant
// factor: preference match first, then optimal hours, then spacing.
func reasonFor(slot models.TimeInterval, preferred string, f models.RecommendationFactors) string {
	switch {
	case preferred != "" && slot.TimeOfDay() == preferred:
		return "Matches your preferred time"
	case f.CustomerPreference > preferenceNeutral && f.CustomerPreference >= f.BusinessOptimal && f.CustomerPreference >= f.BufferTime:
		return "A time you book often"
	case f.BusinessOptimal >= shoulderHoursPoints && f.BusinessOptimal >= f.BufferTime:
		return "Falls in peak business hours"
	case f.BufferTime > 0:
		return "Leaves breathing room around the appointment"
	default:
		return "Open slot"
	}
}
