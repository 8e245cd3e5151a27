package models

// DayAvailability is the result of a slot-discovery query. Closed
// distinguishes "the provider is closed that day" from "every slot is taken";
// both otherwise look like an empty slot list.
type DayAvailability struct {
	Date   string         `json:"date"`
	Closed bool           `json:"closed"`
	Slots  []TimeInterval `json:"slots"`
}
