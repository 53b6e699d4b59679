package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"
)

// rruleWeekdays is indexed by 0=Sunday..6=Saturday, matching time.Weekday.
var rruleWeekdays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// RuleFromOffering normalizes the stored schedule fields of an offering.
// Unparseable dates are dropped; weekday numbers outside 0..6 are ignored.
func RuleFromOffering(o models.Offering, loc *time.Location) models.RecurrenceRule {
	rule := models.RecurrenceRule{RepeatWeekly: o.RepeatWeekly}
	if anchor, ok := NormalizeDate(o.ScheduledFor, loc); ok {
		rule.AnchorDate = anchor
	}
	for _, d := range o.RepeatDays {
		if d >= 0 && d <= 6 {
			rule.RepeatDays = append(rule.RepeatDays, time.Weekday(d))
		}
	}
	for _, raw := range o.Dates {
		if d, ok := NormalizeDate(raw, loc); ok {
			rule.Dates = append(rule.Dates, d)
		}
	}
	return rule
}

// Expand runs the full pipeline for one offering: rule and slot normalization
// followed by generation relative to now. now's location is the display location.
func Expand(o models.Offering, now time.Time) []models.Occurrence {
	rule := RuleFromOffering(o, now.Location())
	anchor := rule.AnchorDate
	if !rule.RepeatWeekly && len(rule.Dates) > 0 {
		// explicit dates synthesize their own slot per date
		anchor = time.Time{}
	}
	return Generate(o.ID, rule, BuildSlots(o.TimeSlots, anchor), now)
}

// Generate expands rule and slots into concrete occurrences, sorted by start.
//
// A non-repeating rule yields one occurrence per slot on the anchor date (or on each
// explicit date). A weekly rule yields one occurrence per slot on every matching
// weekday from the later of the anchor day and today through the last day of now's
// month. An empty result is a normal outcome meaning "no sessions this month".
func Generate(offeringID string, rule models.RecurrenceRule, slots []models.SlotRule, now time.Time) []models.Occurrence {
	var occurrences []models.Occurrence
	if rule.RepeatWeekly {
		for _, day := range weeklyDays(rule, now) {
			occurrences = appendDay(occurrences, offeringID, day, slots, now)
		}
	} else {
		for _, day := range explicitDays(rule, now.Location()) {
			daySlots := slots
			if len(daySlots) == 0 {
				daySlots = BuildSlots(nil, day)
			}
			occurrences = appendDay(occurrences, offeringID, day, daySlots, now)
		}
	}
	return dedupeAndSort(occurrences)
}

// OccurrenceID derives the stable identity of an occurrence. Identical inputs
// always produce identical ids so selections survive regeneration.
func OccurrenceID(offeringID string, day time.Time, slotIndex int) string {
	return fmt.Sprintf("%s-%s-%d", offeringID, day.Format(models.DateLayout), slotIndex)
}

func explicitDays(rule models.RecurrenceRule, loc *time.Location) []time.Time {
	if len(rule.Dates) > 0 {
		days := make([]time.Time, 0, len(rule.Dates))
		for _, d := range rule.Dates {
			if !d.IsZero() {
				days = append(days, d.In(loc))
			}
		}
		return days
	}
	if rule.HasAnchor() {
		return []time.Time{rule.AnchorDate.In(loc)}
	}
	return nil
}

// weeklyDays expands the weekly rule over civil dates. The rrule runs in UTC on
// year/month/day values and each result is re-anchored at noon in now's location,
// since local midnight does not exist on days where DST starts at 00:00.
func weeklyDays(rule models.RecurrenceRule, now time.Time) []time.Time {
	if !rule.HasAnchor() {
		return nil
	}
	byDay := toRRuleWeekdays(rule.RepeatDays)
	if len(byDay) == 0 {
		return nil
	}

	loc := now.Location()
	start := civilDate(rule.AnchorDate.In(loc))
	if today := civilDate(now); today.After(start) {
		start = today
	}
	end := lastDayOfMonth(now)
	if start.After(end) {
		return nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Dtstart:   start,
		Until:     end,
		Byweekday: byDay,
	})
	if err != nil {
		utils.GetLogger().Error("failed to build weekly rule", zap.Error(err), zap.Time("start", start))
		return nil
	}
	dates := r.Between(start, end, true)
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		days = append(days, time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc))
	}
	return days
}

func toRRuleWeekdays(days []time.Weekday) []rrule.Weekday {
	seen := make(map[time.Weekday]bool, len(days))
	out := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, rruleWeekdays[d])
	}
	return out
}

func appendDay(out []models.Occurrence, offeringID string, day time.Time, slots []models.SlotRule, now time.Time) []models.Occurrence {
	for i, slot := range slots {
		out = append(out, newOccurrence(offeringID, day, i, slot, now))
	}
	return out
}

func newOccurrence(offeringID string, day time.Time, index int, slot models.SlotRule, now time.Time) models.Occurrence {
	start := slot.Time.On(day)
	occ := models.Occurrence{
		ID:         OccurrenceID(offeringID, day, index),
		OfferingID: offeringID,
		SlotIndex:  index,
		Start:      start,
		Date:       day.Format(models.DateLayout),
		Label:      SlotLabel(slot),
		IsPast:     start.Before(now),
	}
	if slot.EndTime != nil {
		if end := slot.EndTime.On(day); end.After(start) {
			occ.End = &end
		}
	}
	if slot.Capacity != nil {
		capacity := *slot.Capacity
		occ.Capacity = &capacity
	}
	return occ
}

func dedupeAndSort(in []models.Occurrence) []models.Occurrence {
	seen := make(map[string]bool, len(in))
	out := make([]models.Occurrence, 0, len(in))
	for _, o := range in {
		if o.Start.IsZero() || seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// civilDate returns t's calendar day as midnight UTC.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth returns the final calendar day of t's month as midnight UTC.
func lastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}
