package models

import "time"

// DateLayout is the calendar date format used for day keys and occurrence ids.
const DateLayout = "2006-01-02"

// Occurrence is one concrete, dated and timed instance of an offering.
// Occurrences are derived on every read and never stored.
type Occurrence struct {
	ID         string     `json:"id"` // <offeringId>-<date>-<slotIndex>
	OfferingID string     `json:"offeringId"`
	SlotIndex  int        `json:"slotIndex"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
	Date       string     `json:"date"` // calendar date of Start, DateLayout
	Label      string     `json:"label"`
	Capacity   *int       `json:"capacity"`
	IsPast     bool       `json:"isPast"`
}

// DayGroup buckets the occurrences of one calendar day.
type DayGroup struct {
	Date        string       `json:"date"`
	Label       string       `json:"label"` // e.g. "Wednesday, 14 October 2026"
	Occurrences []Occurrence `json:"occurrences"`
}

// Find returns the occurrence with the given id, if it belongs to the group.
func (g DayGroup) Find(id string) (Occurrence, bool) {
	for _, o := range g.Occurrences {
		if o.ID == id {
			return o, true
		}
	}
	return Occurrence{}, false
}

// HasUpcoming reports whether any occurrence of the day is still bookable.
func (g DayGroup) HasUpcoming() bool {
	for _, o := range g.Occurrences {
		if !o.IsPast {
			return true
		}
	}
	return false
}
