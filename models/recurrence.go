package models

import "time"

// RecurrenceRule is the normalized description of when an offering runs.
type RecurrenceRule struct {
	AnchorDate   time.Time      // first possible occurrence; zero when missing
	RepeatWeekly bool           // expand weekly over the current month
	RepeatDays   []time.Weekday // only meaningful when RepeatWeekly is set
	Dates        []time.Time    // explicit session dates, used instead of AnchorDate when present
}

// HasAnchor reports whether the rule carries a usable anchor date.
func (r RecurrenceRule) HasAnchor() bool {
	return !r.AnchorDate.IsZero()
}
