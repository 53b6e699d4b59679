package scheduling

import (
	"strings"
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

// BuildSlots normalizes authored slots. Slots without a usable start time are
// dropped and authoring order is kept, since "Morning" before "Afternoon" is intent,
// not chronology. A slot repeating an earlier start time is dropped, so no two
// occurrences of a day share a start. When nothing usable remains and anchor carries a time of day other
// than midnight, a single unlabeled slot is synthesized from that time.
func BuildSlots(raw []models.RawSlot, anchor time.Time) []models.SlotRule {
	slots := make([]models.SlotRule, 0, len(raw))
	seen := make(map[models.Clock]bool, len(raw))
	for _, rs := range raw {
		start, ok := ParseClock(rs.Time)
		if !ok || seen[start] {
			continue
		}
		seen[start] = true
		slot := models.SlotRule{
			Time:  start,
			Label: strings.TrimSpace(rs.Label),
		}
		if end, ok := ParseClock(rs.EndTime); ok {
			slot.EndTime = &end
		}
		if rs.Capacity != nil && *rs.Capacity > 0 {
			capacity := *rs.Capacity
			slot.Capacity = &capacity
		}
		slots = append(slots, slot)
	}

	if len(slots) == 0 && !anchor.IsZero() {
		if c := models.ClockOf(anchor); !c.IsMidnight() {
			slots = append(slots, models.SlotRule{Time: c})
		}
	}
	return slots
}

// SlotLabel is the display label of a slot: its own label, else its time range.
func SlotLabel(slot models.SlotRule) string {
	if slot.Label != "" {
		return slot.Label
	}
	if slot.EndTime != nil {
		return slot.Time.String() + " - " + slot.EndTime.String()
	}
	return slot.Time.String()
}
