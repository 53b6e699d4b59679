package models

import (
	"fmt"
	"time"
)

// RawSlot is a time-of-day slot as authored in the back office. Any field may be
// missing or malformed; the slot builder decides what survives.
type RawSlot struct {
	Time     string `bson:"time,omitempty" json:"time,omitempty"`         // e.g. "10:00"
	EndTime  string `bson:"endTime,omitempty" json:"endTime,omitempty"`   // e.g. "12:30"
	Label    string `bson:"label,omitempty" json:"label,omitempty"`       // e.g. "Morning"
	Capacity *int   `bson:"capacity,omitempty" json:"capacity,omitempty"` // seats; nil means open booking
}

// Clock is a local time of day.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second,omitempty"`
}

// ClockOf returns the time-of-day component of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// IsMidnight reports whether c is 00:00:00.
func (c Clock) IsMidnight() bool {
	return c.Hour == 0 && c.Minute == 0 && c.Second == 0
}

// On returns the instant at c on the calendar day of day, in day's location.
func (c Clock) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, c.Second, 0, day.Location())
}

// Minutes returns minutes from midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// SlotRule is a validated slot applied to a date to produce an occurrence.
type SlotRule struct {
	Time     Clock  `json:"time"`
	EndTime  *Clock `json:"endTime,omitempty"`
	Label    string `json:"label,omitempty"`
	Capacity *int   `json:"capacity"`
}
