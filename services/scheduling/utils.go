// File: services/scheduling/utils.go
package scheduling

import (
	"time"

	"slotify/models"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func parseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	return day, nil
}

// clockOn resolves a "HH:MM" clock time onto a specific day.
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "time", Message: "expected HH:MM"}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// intervalFor derives the half-open interval of a booking request from its
// date, start clock time and duration in minutes.
func intervalFor(date, clock string, durationMin int) (models.TimeInterval, error) {
	day, err := parseDate(date)
	if err != nil {
		return models.TimeInterval{}, err
	}
	start, err := clockOn(day, clock)
	if err != nil {
		return models.TimeInterval{}, err
	}
	iv, err := models.NewTimeInterval(start, start.Add(time.Duration(durationMin)*time.Minute))
	if err != nil {
		return models.TimeInterval{}, &ValidationError{Field: "duration", Message: "interval end must be after start"}
	}
	return iv, nil
}
