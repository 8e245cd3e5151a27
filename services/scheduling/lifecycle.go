// File: services/scheduling/lifecycle.go
package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

// allowedTransitions is the booking state machine:
// pending → confirmed → in-progress → completed, with cancellation possible
// from every non-terminal state. completed and cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

// CanTransition reports whether the state machine permits from → to.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateBooking validates the request, copies duration and price from the
// service, and admits the booking only if its interval overlaps no existing
// non-cancelled booking of the provider. The conflict check and the insert
// run under the provider's lock so a concurrent create cannot slip an
// overlapping booking in between them.
func (s *DefaultSchedulingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	provider, err := s.ProviderRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, &NotFoundError{Resource: "provider", ID: req.ProviderID}
	}

	customer, err := s.CustomerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Resource: "customer", ID: req.CustomerID}
	}

	service, err := s.ServiceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil || service.ProviderID != req.ProviderID {
		return nil, &NotFoundError{Resource: "service", ID: req.ServiceID}
	}
	if service.Duration < int(SlotGranularity.Minutes()) {
		return nil, &ValidationError{Field: "duration", Message: "service duration is below the minimum slot granularity"}
	}

	interval, err := intervalFor(req.Date, req.Time, service.Duration)
	if err != nil {
		return nil, err
	}
	if interval.Start.Before(time.Now()) {
		return nil, &ValidationError{Field: "date", Message: "booking start is in the past"}
	}

	mu := s.locks.forProvider(req.ProviderID)
	mu.Lock()
	defer mu.Unlock()

	bookings, err := s.BookingRepo.GetActiveBookings(ctx, req.ProviderID, req.Date)
	if err != nil {
		return nil, err
	}
	if conflicts := FindConflicts(interval, bookings, ""); len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   service.Duration,
		Price:      service.Price,
		Status:     models.StatusPending,
		Interval:   interval,
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Projection update; failures are logged, never surfaced.
	if err := s.CustomerRepo.IncrementStats(ctx, req.CustomerID, req.Date); err != nil {
		utils.GetLogger().Warn("failed to increment customer stats",
			zap.String("customerID", req.CustomerID), zap.Error(err))
	}

	s.emit(ctx, models.EventBookingCreated, booking)
	return booking, nil
}

// GetBooking fetches a booking by id.
func (s *DefaultSchedulingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	return booking, nil
}

// UpdateStatus applies a pure state transition. No temporal recomputation and
// no conflict re-check happen here.
func (s *DefaultSchedulingService) UpdateStatus(ctx context.Context, bookingID, newStatus string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, newStatus) {
		return nil, &InvalidTransitionError{From: booking.Status, To: newStatus}
	}
	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	booking.Status = newStatus

	eventType := models.EventBookingStatus
	if newStatus == models.StatusCancelled {
		eventType = models.EventBookingCancelled
	}
	s.emit(ctx, eventType, booking)
	return booking, nil
}

// RescheduleBooking moves a booking to a new start, keeping its duration.
// The previous interval is captured as OriginalInterval. A conflict leaves
// the booking unmodified; status never changes here.
func (s *DefaultSchedulingService) RescheduleBooking(ctx context.Context, req RescheduleRequest) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.IsTerminal() {
		return nil, &ValidationError{Field: "status", Message: "cannot reschedule a " + booking.Status + " booking"}
	}
	if req.NewStart.IsZero() {
		return nil, &ValidationError{Field: "new_start", Message: "new start time is required"}
	}
	if req.NewStart.Before(time.Now()) {
		return nil, &ValidationError{Field: "new_start", Message: "new start is in the past"}
	}

	newInterval, err := models.NewTimeInterval(req.NewStart, req.NewStart.Add(time.Duration(booking.Duration)*time.Minute))
	if err != nil {
		return nil, &ValidationError{Field: "new_start", Message: err.Error()}
	}
	newDate := req.NewStart.Format(dateLayout)

	mu := s.locks.forProvider(booking.ProviderID)
	mu.Lock()
	defer mu.Unlock()

	// The booking being moved is excluded from its own conflict set.
	others, err := s.BookingRepo.GetActiveBookings(ctx, booking.ProviderID, newDate)
	if err != nil {
		return nil, err
	}
	if conflicts := FindConflicts(newInterval, others, booking.ID); len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	previous := booking.Interval
	booking.OriginalInterval = &previous
	booking.Interval = newInterval
	booking.Date = newDate
	booking.Time = req.NewStart.Format(clockLayout)
	booking.Reschedule = &models.RescheduleMetadata{
		RescheduledAt: time.Now(),
		RescheduledBy: req.ActorID,
		Reason:        req.Reason,
	}
	if err := s.BookingRepo.UpdateSchedule(ctx, booking); err != nil {
		return nil, err
	}

	s.emit(ctx, models.EventBookingRescheduled, booking)
	return booking, nil
}

// CancelBooking cancels from any non-terminal state. The record is retained
// and immediately leaves the conflict set seen by future creates and
// reschedules.
func (s *DefaultSchedulingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.UpdateStatus(ctx, bookingID, models.StatusCancelled)
}

// RecomputeConflictSnapshot re-derives the denormalized display-only conflict
// fields from a live query and persists them. Explicitly caller-invoked; the
// snapshot is never consulted at decision points.
func (s *DefaultSchedulingService) RecomputeConflictSnapshot(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	active, err := s.BookingRepo.GetActiveBookings(ctx, booking.ProviderID, booking.Date)
	if err != nil {
		return nil, err
	}
	conflicts := FindConflicts(booking.Interval, active, booking.ID)

	ids := make([]string, 0, len(conflicts))
	for _, ref := range conflicts {
		ids = append(ids, ref.ID)
	}
	if err := s.BookingRepo.UpdateConflictSnapshot(ctx, bookingID, len(ids) > 0, ids); err != nil {
		return nil, err
	}
	booking.HasConflicts = len(ids) > 0
	booking.ConflictsWith = ids
	return booking, nil
}

func (s *DefaultSchedulingService) emit(ctx context.Context, eventType string, booking *models.Booking) {
	if s.Notifier == nil {
		return
	}
	event := models.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		ProviderID: booking.ProviderID,
		CustomerID: booking.CustomerID,
		Status:     booking.Status,
		Date:       booking.Date,
		OccurredAt: time.Now(),
	}
	if err := s.Notifier.Publish(ctx, event); err != nil {
		utils.GetLogger().Warn("failed to publish booking event",
			zap.String("bookingID", booking.ID), zap.String("type", eventType), zap.Error(err))
	}
}
