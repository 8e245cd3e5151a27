// File: services/scheduling/conflict.go
package scheduling

import (
	"context"

	"slotify/models"
)

// FindConflicts returns a reference for every booking whose interval overlaps
// the proposal. The caller's query must already exclude cancelled bookings;
// excludeID additionally skips the booking being moved during a reschedule.
//
// The single symmetric overlap predicate covers all four historical cases
// (partial-start, partial-end, proposal-contains-existing and
// existing-contains-proposal).
func FindConflicts(proposal models.TimeInterval, bookings []models.Booking, excludeID string) []models.BookingRef {
	var conflicts []models.BookingRef
	for _, b := range bookings {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if proposal.Overlaps(b.Interval) {
			conflicts = append(conflicts, models.BookingRef{ID: b.ID, Interval: b.Interval})
		}
	}
	return conflicts
}

// CheckConflicts is the read-only dry run behind the check-conflicts
// endpoint. Idempotent: identical input with no intervening writes yields
// identical results.
func (s *DefaultSchedulingService) CheckConflicts(ctx context.Context, req ConflictCheckRequest) (*ConflictReport, error) {
	if req.Duration < int(SlotGranularity.Minutes()) {
		return nil, &ValidationError{Field: "duration", Message: "duration is below the minimum slot granularity"}
	}
	proposal, err := intervalFor(req.Date, req.Time, req.Duration)
	if err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepo.GetActiveBookings(ctx, req.ProviderID, req.Date)
	if err != nil {
		return nil, err
	}

	conflicts := FindConflicts(proposal, bookings, req.ExcludeBookingID)
	return &ConflictReport{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}, nil
}
