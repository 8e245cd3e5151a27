package models

// RecommendationFactors breaks a slot's score into its integer sub-scores.
// Recomputed on demand; never authoritative across time since historical
// demand shifts.
type RecommendationFactors struct {
	Availability       int `json:"availability"`
	CustomerPreference int `json:"customer_preference"`
	BusinessOptimal    int `json:"business_optimal"`
	HistoricalDemand   int `json:"historical_demand"`
	BufferTime         int `json:"buffer_time"`
}

// Total sums the sub-scores.
func (f RecommendationFactors) Total() int {
	return f.Availability + f.CustomerPreference + f.BusinessOptimal + f.HistoricalDemand + f.BufferTime
}

// ScoredSlot is one ranked recommendation candidate.
type ScoredSlot struct {
	Interval TimeInterval          `json:"interval"`
	Score    int                   `json:"score"`
	Factors  RecommendationFactors `json:"factors"`
	Reason   string                `json:"reason"`
}
