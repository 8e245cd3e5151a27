package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"slotify/models"
)

const (
	testProvider = "prov-1"
	testCustomer = "cust-1"
	testService  = "svc-1"
)

// weekdayHours opens Monday through Saturday 09:00-17:00, closed Sunday.
func weekdayHours() models.WorkingHours {
	var hours models.WorkingHours
	for d := time.Monday; d <= time.Saturday; d++ {
		hours[int(d)] = models.DayHours{IsOpen: true, Open: "09:00", Close: "17:00"}
	}
	hours[int(time.Sunday)] = models.DayHours{IsOpen: false}
	return hours
}

// nextDate returns the next occurrence of the weekday, at least two days out
// so same-day "start is in the past" checks never trip.
func nextDate(wd time.Weekday) string {
	day := time.Now().AddDate(0, 0, 2)
	for day.Weekday() != wd {
		day = day.AddDate(0, 0, 1)
	}
	return day.Format(dateLayout)
}

type testEnv struct {
	svc       *DefaultSchedulingService
	bookings  *fakeBookingRepo
	customers *fakeCustomerRepo
	sink      *recordingSink
}

func newTestEnv() *testEnv {
	bookings := newFakeBookingRepo()
	customers := &fakeCustomerRepo{customers: map[string]*models.Customer{
		testCustomer: {ID: testCustomer, Name: "Dana"},
	}}
	providers := &fakeProviderRepo{providers: map[string]*models.Provider{
		testProvider: {ID: testProvider, Name: "Glow Studio", WorkingHours: weekdayHours()},
	}}
	services := &fakeServiceRepo{services: map[string]*models.Service{
		testService: {ID: testService, ProviderID: testProvider, Name: "Deep Tissue", Duration: 60, Price: 80, Active: true},
	}}
	sink := &recordingSink{}

	return &testEnv{
		svc: &DefaultSchedulingService{
			BookingRepo:  bookings,
			ProviderRepo: providers,
			CustomerRepo: customers,
			ServiceRepo:  services,
			Notifier:     sink,
		},
		bookings:  bookings,
		customers: customers,
		sink:      sink,
	}
}

// seedBooking inserts a booking directly into the fake repo, bypassing the
// lifecycle manager.
func (e *testEnv) seedBooking(t *testing.T, id, date, clock string, durationMin int, status string) *models.Booking {
	t.Helper()
	interval, err := intervalFor(date, clock, durationMin)
	require.NoError(t, err)
	booking := &models.Booking{
		ID:         id,
		ProviderID: testProvider,
		CustomerID: testCustomer,
		ServiceID:  testService,
		Date:       date,
		Time:       clock,
		Duration:   durationMin,
		Status:     status,
		Interval:   interval,
	}
	require.NoError(t, e.bookings.Create(context.Background(), booking))
	return booking
}

// assertNoOverlaps scans every pair of non-cancelled bookings per provider
// and fails if any two intervals overlap.
func assertNoOverlaps(t *testing.T, repo *fakeBookingRepo) {
	t.Helper()
	all := repo.all()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.ProviderID != b.ProviderID {
				continue
			}
			if a.Status == models.StatusCancelled || b.Status == models.StatusCancelled {
				continue
			}
			require.False(t, a.Interval.Overlaps(b.Interval),
				"bookings %s and %s overlap: %s vs %s", a.ID, b.ID, a.Interval, b.Interval)
		}
	}
}
