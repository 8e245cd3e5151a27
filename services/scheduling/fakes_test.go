package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"slotify/models"
)

// In-memory repositories backing the scheduling tests.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) GetActiveBookings(_ context.Context, providerID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Status != models.StatusCancelled {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Interval.Start.Before(out[j].Interval.Start) })
	return out, nil
}

func (r *fakeBookingRepo) GetCustomerHistory(_ context.Context, customerID string, limit int) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID && b.Status == models.StatusCompleted {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Interval.Start.After(out[j].Interval.Start) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBookingRepo) CountCompletedByTimeOfDay(_ context.Context, providerID string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int)
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Status == models.StatusCompleted {
			counts[b.Time]++
		}
	}
	return counts, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) UpdateSchedule(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[booking.ID]
	if !ok {
		return nil
	}
	b.Date = booking.Date
	b.Time = booking.Time
	b.Interval = booking.Interval
	b.OriginalInterval = booking.OriginalInterval
	b.Reschedule = booking.Reschedule
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) UpdateConflictSnapshot(_ context.Context, bookingID string, hasConflicts bool, conflictsWith []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil
	}
	b.HasConflicts = hasConflicts
	b.ConflictsWith = conflictsWith
	return nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

// all returns a snapshot of every stored booking.
func (r *fakeBookingRepo) all() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (r *fakeProviderRepo) GetByID(_ context.Context, providerID string) (*models.Provider, error) {
	p, ok := r.providers[providerID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProviderRepo) GetByIDWithProjection(ctx context.Context, providerID string, _ bson.M) (*models.Provider, error) {
	return r.GetByID(ctx, providerID)
}

func (r *fakeProviderRepo) GetWorkingHours(_ context.Context, providerID string) (*models.WorkingHours, error) {
	p, ok := r.providers[providerID]
	if !ok {
		return nil, nil
	}
	hours := p.WorkingHours
	return &hours, nil
}

func (r *fakeProviderRepo) UpdateWorkingHours(_ context.Context, providerID string, hours models.WorkingHours) error {
	if p, ok := r.providers[providerID]; ok {
		p.WorkingHours = hours
	}
	return nil
}

func (r *fakeProviderRepo) EnsureIndexes() error { return nil }

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*models.Customer
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, customerID string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[customerID]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCustomerRepo) IncrementStats(_ context.Context, customerID, bookingDate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.customers[customerID]; ok {
		c.BookingCount++
		c.LastBookingDate = bookingDate
	}
	return nil
}

func (r *fakeCustomerRepo) EnsureIndexes() error { return nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (r *fakeServiceRepo) GetByID(_ context.Context, serviceID string) (*models.Service, error) {
	s, ok := r.services[serviceID]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *fakeServiceRepo) GetByProviderID(_ context.Context, providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) EnsureIndexes() error { return nil }

type recordingSink struct {
	mu     sync.Mutex
	events []models.BookingEvent
}

func (s *recordingSink) Publish(_ context.Context, event models.BookingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}
