package scheduling

import (
	"sort"
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

// DayLabelLayout is the long-form date shown above each day's sessions.
const DayLabelLayout = "Monday, 2 January 2006"

// GroupByDay buckets occurrences by calendar date. Days and the sessions within
// each day come out in chronological order; a day is only created for an occurrence,
// so no group is ever empty.
func GroupByDay(occurrences []models.Occurrence) []models.DayGroup {
	var groups []models.DayGroup
	index := make(map[string]int)
	for _, o := range occurrences {
		i, ok := index[o.Date]
		if !ok {
			groups = append(groups, models.DayGroup{
				Date:  o.Date,
				Label: dayLabel(o),
			})
			i = len(groups) - 1
			index[o.Date] = i
		}
		groups[i].Occurrences = append(groups[i].Occurrences, o)
	}

	// Dates are ISO formatted, so string order is calendar order.
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Date < groups[j].Date })
	for _, g := range groups {
		occ := g.Occurrences
		sort.SliceStable(occ, func(i, j int) bool { return occ[i].Start.Before(occ[j].Start) })
	}
	return groups
}

// dayLabel formats the occurrence's calendar date, falling back to its start
// when the date is malformed.
func dayLabel(o models.Occurrence) string {
	if d, err := time.Parse(models.DateLayout, o.Date); err == nil {
		return d.Format(DayLabelLayout)
	}
	return o.Start.Format(DayLabelLayout)
}

// FindOccurrence looks an occurrence up across all groups.
func FindOccurrence(groups []models.DayGroup, id string) (models.Occurrence, bool) {
	for _, g := range groups {
		if o, ok := g.Find(id); ok {
			return o, true
		}
	}
	return models.Occurrence{}, false
}
