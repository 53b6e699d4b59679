package scheduling

import (
	"errors"
	"fmt"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

// SelectionPhase is the position of a Selection in the day → slot flow.
type SelectionPhase int

const (
	NoSelection SelectionPhase = iota
	DaySelected
	DayAndSlotSelected
)

func (p SelectionPhase) String() string {
	switch p {
	case DaySelected:
		return "daySelected"
	case DayAndSlotSelected:
		return "dayAndSlotSelected"
	default:
		return "noSelection"
	}
}

var (
	ErrUnknownDay    = errors.New("no sessions on that day")
	ErrNoDaySelected = errors.New("select a day before choosing a session")
	ErrSlotNotInDay  = errors.New("session does not belong to the selected day")
)

// Selection is the two-level day → slot choice over a set of day groups.
// The selected occurrence, when set, always belongs to the selected day.
type Selection struct {
	groups []models.DayGroup
	state  models.SelectionState
}

// NewSelection starts with nothing selected.
func NewSelection(groups []models.DayGroup) *Selection {
	return &Selection{groups: groups}
}

// InitialSelection picks the first day to show: the day of the primary occurrence
// when it is still present, else the first day with an upcoming session, else the
// first day overall.
func InitialSelection(groups []models.DayGroup, primaryID string) *Selection {
	s := NewSelection(groups)
	if len(groups) == 0 {
		return s
	}

	if primaryID != "" {
		for _, g := range groups {
			if _, ok := g.Find(primaryID); ok {
				s.state = models.SelectionState{SelectedDate: g.Date, SelectedOccurrenceID: primaryID}
				return s
			}
		}
	}

	day := groups[0]
	for _, g := range groups {
		if g.HasUpcoming() {
			day = g
			break
		}
	}
	s.selectGroup(day)
	return s
}

// RestoreSelection rebuilds a selection from a persisted state against freshly
// generated groups. It reports false when the stored day no longer exists, in
// which case the returned selection is empty. A stored session that vanished from
// a day that still exists is replaced by the day's default.
func RestoreSelection(groups []models.DayGroup, state models.SelectionState) (*Selection, bool) {
	s := NewSelection(groups)
	if state.SelectedDate == "" {
		return s, true
	}
	g, ok := s.group(state.SelectedDate)
	if !ok {
		return s, false
	}
	if _, found := g.Find(state.SelectedOccurrenceID); found {
		s.state = state
		return s, true
	}
	if state.SelectedOccurrenceID == "" {
		s.state = models.SelectionState{SelectedDate: state.SelectedDate}
		return s, true
	}
	s.selectGroup(g)
	return s, true
}

// SelectDay moves to the given day and picks its first upcoming session, or its
// first session when the whole day is past so the day can still be viewed.
func (s *Selection) SelectDay(date string) error {
	g, ok := s.group(date)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDay, date)
	}
	s.selectGroup(g)
	return nil
}

// selectGroup opens g with its default session; an empty group clears the selection.
func (s *Selection) selectGroup(g models.DayGroup) {
	if len(g.Occurrences) == 0 {
		s.state = models.SelectionState{}
		return
	}
	pick := g.Occurrences[0]
	for _, o := range g.Occurrences {
		if !o.IsPast {
			pick = o
			break
		}
	}
	s.state = models.SelectionState{SelectedDate: g.Date, SelectedOccurrenceID: pick.ID}
}

// SelectSlot chooses a session within the selected day. Choosing a session from
// another day is a caller error and leaves the selection unchanged.
func (s *Selection) SelectSlot(occurrenceID string) error {
	if s.state.SelectedDate == "" {
		return ErrNoDaySelected
	}
	g, ok := s.group(s.state.SelectedDate)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDay, s.state.SelectedDate)
	}
	if _, ok := g.Find(occurrenceID); !ok {
		return fmt.Errorf("%w: %s not on %s", ErrSlotNotInDay, occurrenceID, g.Date)
	}
	s.state.SelectedOccurrenceID = occurrenceID
	return nil
}

// Phase reports where the selection is in the day → slot flow.
func (s *Selection) Phase() SelectionPhase {
	switch {
	case s.state.SelectedDate == "":
		return NoSelection
	case s.state.SelectedOccurrenceID == "":
		return DaySelected
	default:
		return DayAndSlotSelected
	}
}

// State returns a copy of the current state for persistence or rendering.
func (s *Selection) State() models.SelectionState {
	return s.state
}

// Day returns the selected day group.
func (s *Selection) Day() (models.DayGroup, bool) {
	if s.state.SelectedDate == "" {
		return models.DayGroup{}, false
	}
	return s.group(s.state.SelectedDate)
}

// Selected returns the selected occurrence.
func (s *Selection) Selected() (models.Occurrence, bool) {
	g, ok := s.Day()
	if !ok || s.state.SelectedOccurrenceID == "" {
		return models.Occurrence{}, false
	}
	return g.Find(s.state.SelectedOccurrenceID)
}

func (s *Selection) group(date string) (models.DayGroup, bool) {
	for _, g := range s.groups {
		if g.Date == date && len(g.Occurrences) > 0 {
			return g, true
		}
	}
	return models.DayGroup{}, false
}
