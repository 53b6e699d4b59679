package models

import "time"

// SelectionState is the day → slot choice of a visitor.
type SelectionState struct {
	SelectedDate         string `json:"selectedDate,omitempty"`
	SelectedOccurrenceID string `json:"selectedOccurrenceId,omitempty"`
}

// SelectionSession holds a visitor's selection between requests.
type SelectionSession struct {
	ID         string         `json:"id"`
	Kind       OfferingKind   `json:"kind"`
	OfferingID string         `json:"offeringId"`
	State      SelectionState `json:"state"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ScheduleView is what the storefront renders for one offering.
type ScheduleView struct {
	Offering  Offering       `json:"offering"`
	Days      []DayGroup     `json:"days"`
	Selection SelectionState `json:"selection"`
	Empty     bool           `json:"empty"` // no sessions this month
}

// ScheduleSummary is the card view of an offering in a listing.
type ScheduleSummary struct {
	Offering     OfferingMeta `json:"offering"`
	NextSession  *Occurrence  `json:"nextSession,omitempty"`
	SessionCount int          `json:"sessionCount"`
}

// SessionView is returned by every selection session transition.
type SessionView struct {
	SessionID string       `json:"sessionId"`
	Phase     string       `json:"phase"` // "noSelection", "daySelected", "dayAndSlotSelected"
	Schedule  ScheduleView `json:"schedule"`
	Selected  *Occurrence  `json:"selected,omitempty"`
}
