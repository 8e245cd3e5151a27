package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned when constructing an interval whose end
// does not come strictly after its start.
var ErrInvalidInterval = errors.New("interval end must be after start")

// TimeInterval is a half-open time range [Start, End). It includes its start
// instant and excludes its end instant, so two intervals that merely touch at
// a shared boundary do not overlap.
type TimeInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// NewTimeInterval validates and constructs a TimeInterval.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !end.After(start) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether a and b share at least one instant.
// Half-open semantics: a.Start < b.End && b.Start < a.End.
func (a TimeInterval) Overlaps(b TimeInterval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Contains reports whether a fully covers b.
func (a TimeInterval) Contains(b TimeInterval) bool {
	return !a.Start.After(b.Start) && !a.End.Before(b.End)
}

// Duration returns the length of the interval.
func (a TimeInterval) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// TimeOfDay returns the interval's start clock time as "HH:MM".
func (a TimeInterval) TimeOfDay() string {
	return a.Start.Format("15:04")
}

func (a TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s)", a.Start.Format(time.RFC3339), a.End.Format(time.RFC3339))
}
