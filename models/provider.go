package models

import "time"

// DayHours describes a provider's open window for one day of the week.
// Open and Close are provider-local clock times in "HH:MM" format.
type DayHours struct {
	IsOpen bool   `bson:"is_open" json:"is_open"`
	Open   string `bson:"open,omitempty" json:"open,omitempty"`
	Close  string `bson:"close,omitempty" json:"close,omitempty"`
}

// WorkingHours is a weekly template, indexed by time.Weekday (Sunday = 0).
// Owned by the provider profile; mutated only through provider settings
// updates and read-only to the scheduling core.
type WorkingHours [7]DayHours

// ForWeekday returns the template entry for the given weekday.
func (w WorkingHours) ForWeekday(d time.Weekday) DayHours {
	return w[int(d)]
}

// Provider is the service business whose calendar is being scheduled.
type Provider struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email,omitempty"`
	TokenHash    string       `bson:"token_hash,omitempty" json:"-"`
	WorkingHours WorkingHours `bson:"working_hours" json:"working_hours"`
	Status       string       `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}
