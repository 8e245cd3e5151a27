package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

func mustInterval(t *testing.T, clock string, durationMin int) models.TimeInterval {
	t.Helper()
	iv, err := intervalFor("2030-06-03", clock, durationMin)
	require.NoError(t, err)
	return iv
}

func bookingAt(t *testing.T, id, clock string, durationMin int) models.Booking {
	t.Helper()
	return models.Booking{
		ID:       id,
		Status:   models.StatusConfirmed,
		Interval: mustInterval(t, clock, durationMin),
	}
}

// The single symmetric overlap predicate covers every historical overlap
// case; touching endpoints never collide.
func TestFindConflicts(t *testing.T) {
	existing := []models.Booking{bookingAt(t, "bk-1", "10:00", 60)}

	tests := []struct {
		name     string
		proposal models.TimeInterval
		hit      bool
	}{
		{"partial overlap at start", mustInterval(t, "09:30", 60), true},
		{"partial overlap at end", mustInterval(t, "10:30", 60), true},
		{"proposal contains existing", mustInterval(t, "09:00", 180), true},
		{"existing contains proposal", mustInterval(t, "10:15", 30), true},
		{"identical interval", mustInterval(t, "10:00", 60), true},
		{"ends at existing start", mustInterval(t, "09:00", 60), false},
		{"starts at existing end", mustInterval(t, "11:00", 60), false},
		{"disjoint", mustInterval(t, "14:00", 60), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := FindConflicts(tt.proposal, existing, "")
			if tt.hit {
				require.Len(t, conflicts, 1)
				assert.Equal(t, "bk-1", conflicts[0].ID)
			} else {
				assert.Empty(t, conflicts)
			}
		})
	}
}

func TestFindConflictsExclude(t *testing.T) {
	existing := []models.Booking{
		bookingAt(t, "bk-1", "10:00", 60),
		bookingAt(t, "bk-2", "11:00", 60),
	}

	proposal := mustInterval(t, "10:30", 60)
	conflicts := FindConflicts(proposal, existing, "bk-1")
	require.Len(t, conflicts, 1)
	assert.Equal(t, "bk-2", conflicts[0].ID)
}

func TestFindConflictsReportsAllCollisions(t *testing.T) {
	existing := []models.Booking{
		bookingAt(t, "bk-1", "10:00", 30),
		bookingAt(t, "bk-2", "10:30", 30),
		bookingAt(t, "bk-3", "12:00", 30),
	}

	proposal := mustInterval(t, "10:00", 60)
	conflicts := FindConflicts(proposal, existing, "")
	require.Len(t, conflicts, 2)

	ids := []string{conflicts[0].ID, conflicts[1].ID}
	assert.Contains(t, ids, "bk-1")
	assert.Contains(t, ids, "bk-2")
}

func TestFindConflictsSymmetric(t *testing.T) {
	a := mustInterval(t, "09:00", 90)
	b := mustInterval(t, "10:00", 90)

	first := FindConflicts(a, []models.Booking{{ID: "x", Interval: b}}, "")
	second := FindConflicts(b, []models.Booking{{ID: "x", Interval: a}}, "")
	assert.Equal(t, len(first), len(second))
}

func TestIntervalForValidation(t *testing.T) {
	_, err := intervalFor("not-a-date", "10:00", 60)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "date", validationErr.Field)

	_, err = intervalFor("2030-06-03", "25:99", 60)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "time", validationErr.Field)

	_, err = intervalFor("2030-06-03", "10:00", 0)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "duration", validationErr.Field)

	iv, err := intervalFor("2030-06-03", "10:00", 45)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, iv.Duration())
}
