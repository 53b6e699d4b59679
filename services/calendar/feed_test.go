package calendar

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

func TestBuildFeed(t *testing.T) {
	now := time.Date(2026, 10, 14, 11, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 21, 12, 30, 0, 0, time.UTC)
	offering := models.Offering{
		ID:          "wreaths",
		Title:       "Wreath making",
		Description: "Seasonal wreaths with farm greenery.",
		Location:    "The barn",
	}
	occurrences := []models.Occurrence{
		{ID: "wreaths-2026-10-14-0", Start: time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC), Label: "10:00", IsPast: true},
		{ID: "wreaths-2026-10-21-0", Start: time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC), End: &end, Label: "Morning"},
		{ID: "wreaths-2026-10-28-0", Start: time.Date(2026, 10, 28, 14, 0, 0, 0, time.UTC), Label: "14:00"},
	}

	feed := BuildFeed(offering, occurrences, now)
	assert.Contains(t, feed, "PRODID:"+ProductID)

	cal, err := ical.ParseCalendar(strings.NewReader(feed))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2, "past sessions are left out")

	first := events[0]
	assert.Equal(t, "wreaths-2026-10-21-0@bethanyblooms", first.Id())
	assert.Equal(t, "Wreath making (Morning)", first.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "The barn", first.GetProperty(ical.ComponentPropertyLocation).Value)
	start, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, occurrences[1].Start.Equal(start))
	gotEnd, err := first.GetEndAt()
	require.NoError(t, err)
	assert.True(t, end.Equal(gotEnd))

	second := events[1]
	assert.Equal(t, "Wreath making", second.GetProperty(ical.ComponentPropertySummary).Value)
	gotEnd, err = second.GetEndAt()
	require.NoError(t, err)
	assert.True(t, occurrences[2].Start.Add(DefaultSessionLength).Equal(gotEnd))
}

func TestBuildFeed_Empty(t *testing.T) {
	feed := BuildFeed(models.Offering{Title: "Cut flowers"}, nil, time.Now())
	cal, err := ical.ParseCalendar(strings.NewReader(feed))
	require.NoError(t, err)
	assert.Empty(t, cal.Events())
}
