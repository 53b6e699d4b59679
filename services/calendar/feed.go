package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

const (
	ProductID = "-//Bethany Blooms//Sessions//EN"
	uidDomain = "bethanyblooms"

	// used when a slot has no end time
	DefaultSessionLength = 2 * time.Hour
)

// BuildFeed renders the upcoming occurrences of an offering as an iCalendar feed.
// Past occurrences are left out. Event UIDs are derived from occurrence ids so
// calendar clients update rather than duplicate events on refresh.
func BuildFeed(o models.Offering, occurrences []models.Occurrence, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	for _, occ := range occurrences {
		if occ.IsPast {
			continue
		}
		end := occ.Start.Add(DefaultSessionLength)
		if occ.End != nil {
			end = *occ.End
		}

		event := cal.AddEvent(EventUID(occ.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(occ.Start)
		event.SetEndAt(end)
		event.SetSummary(eventSummary(o, occ))
		if o.Location != "" {
			event.SetLocation(o.Location)
		}
		if d := strings.TrimSpace(o.Description); d != "" {
			event.SetDescription(d)
		}
	}
	return cal.Serialize()
}

// EventUID is the iCalendar UID of an occurrence.
func EventUID(occurrenceID string) string {
	return occurrenceID + "@" + uidDomain
}

func eventSummary(o models.Offering, occ models.Occurrence) string {
	if occ.Label == "" || occ.Label == occ.Start.Format("15:04") {
		return o.Title
	}
	return fmt.Sprintf("%s (%s)", o.Title, occ.Label)
}
