package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

type firestoreLike struct{ t time.Time }

func (f firestoreLike) ToDate() time.Time { return f.t }

type panicky struct{}

func (*panicky) ToDate() time.Time { panic("boom") }

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	want := time.Date(2026, 10, 14, 10, 0, 0, 0, loc)

	cases := []struct {
		name string
		in   interface{}
	}{
		{"time value", want.UTC()},
		{"time pointer", &want},
		{"rfc3339 utc", "2026-10-14T08:00:00Z"},
		{"rfc3339 millis", "2026-10-14T08:00:00.000Z"},
		{"local iso", "2026-10-14T10:00"},
		{"local iso seconds", "2026-10-14T10:00:00"},
		{"local spaced", "2026-10-14 10:00"},
		{"mongo date", primitive.NewDateTimeFromTime(want)},
		{"mongo timestamp", primitive.Timestamp{T: uint32(want.Unix())}},
		{"epoch map", map[string]interface{}{"seconds": want.Unix(), "nanoseconds": 0}},
		{"underscored epoch", bson.M{"_seconds": float64(want.Unix())}},
		{"epoch document", bson.D{{Key: "seconds", Value: int64(want.Unix())}}},
		{"converter", firestoreLike{t: want}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeDate(tc.in, loc)
			require.True(t, ok)
			assert.True(t, want.Equal(got), "got %s", got)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestNormalizeDate_DateOnlyIsLocalMidnight(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	got, ok := NormalizeDate("2026-11-04", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 11, 4, 0, 0, 0, 0, loc), got)
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	var nilTime *time.Time
	for _, in := range []interface{}{
		nil,
		"",
		"   ",
		"next tuesday",
		"2026-13-40",
		42,
		true,
		nilTime,
		time.Time{},
		map[string]interface{}{"when": "today"},
		map[string]interface{}{"seconds": "soon"},
		[]string{"2026-10-14"},
		&panicky{},
	} {
		got, ok := NormalizeDate(in, time.UTC)
		assert.False(t, ok, "input %#v", in)
		assert.True(t, got.IsZero(), "input %#v must not resolve to a time", in)
	}
}

func TestParseClock(t *testing.T) {
	valid := map[string]models.Clock{
		"10:00":    {Hour: 10},
		"09:30":    {Hour: 9, Minute: 30},
		"9.30":     {Hour: 9, Minute: 30},
		"14:15:30": {Hour: 14, Minute: 15, Second: 30},
		"9:30 AM":  {Hour: 9, Minute: 30},
		"12:00 am": {Hour: 0},
		"12:15PM":  {Hour: 12, Minute: 15},
		"3PM":      {Hour: 15},
		" 23:59 ":  {Hour: 23, Minute: 59},
	}
	for in, want := range valid {
		got, ok := ParseClock(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "10", "24:00", "10:60", "13:00 PM", "0 AM", "ten", "1:2:3:4", "-1:00", "10:"} {
		_, ok := ParseClock(in)
		assert.False(t, ok, in)
	}
}
