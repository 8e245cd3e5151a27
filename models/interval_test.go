package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ivl(t *testing.T, startHour, startMin, endHour, endMin int) TimeInterval {
	t.Helper()
	day := time.Date(2030, time.June, 3, 0, 0, 0, 0, time.UTC)
	iv, err := NewTimeInterval(
		day.Add(time.Duration(startHour)*time.Hour+time.Duration(startMin)*time.Minute),
		day.Add(time.Duration(endHour)*time.Hour+time.Duration(endMin)*time.Minute),
	)
	require.NoError(t, err)
	return iv
}

func TestNewTimeInterval(t *testing.T) {
	start := time.Date(2030, time.June, 3, 10, 0, 0, 0, time.UTC)

	_, err := NewTimeInterval(start, start)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewTimeInterval(start, start.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	iv, err := NewTimeInterval(start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, iv.Duration())
	assert.Equal(t, "10:00", iv.TimeOfDay())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeInterval
		want bool
	}{
		{"partial at start", ivl(t, 9, 30, 10, 30), ivl(t, 10, 0, 11, 0), true},
		{"partial at end", ivl(t, 10, 30, 11, 30), ivl(t, 10, 0, 11, 0), true},
		{"a contains b", ivl(t, 9, 0, 12, 0), ivl(t, 10, 0, 11, 0), true},
		{"b contains a", ivl(t, 10, 15, 10, 45), ivl(t, 10, 0, 11, 0), true},
		{"identical", ivl(t, 10, 0, 11, 0), ivl(t, 10, 0, 11, 0), true},
		{"touching end-to-start", ivl(t, 9, 0, 10, 0), ivl(t, 10, 0, 11, 0), false},
		{"touching start-to-end", ivl(t, 11, 0, 12, 0), ivl(t, 10, 0, 11, 0), false},
		{"disjoint", ivl(t, 14, 0, 15, 0), ivl(t, 10, 0, 11, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlapsReflexive(t *testing.T) {
	a := ivl(t, 10, 0, 11, 0)
	assert.True(t, a.Overlaps(a))
}

func TestContains(t *testing.T) {
	outer := ivl(t, 9, 0, 17, 0)
	inner := ivl(t, 10, 0, 11, 0)

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Contains(outer))

	// Containment implies overlap.
	assert.True(t, outer.Overlaps(inner))

	straddling := ivl(t, 8, 0, 10, 0)
	assert.False(t, outer.Contains(straddling))
	assert.True(t, outer.Overlaps(straddling))
}
