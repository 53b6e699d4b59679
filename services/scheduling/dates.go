package scheduling

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"
)

// Zone-less layouts are read in the caller's location.
var localDateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	models.DateLayout,
}

type dateConverter interface {
	ToDate() time.Time
}

type timeConverter interface {
	AsTime() time.Time
}

// NormalizeDate resolves a stored date of unknown shape into an instant in loc.
// It accepts time values, ISO-8601 strings, Mongo date/timestamp values,
// epoch-seconds documents ({seconds, nanoseconds} or {_seconds, _nanoseconds})
// and values exposing ToDate or AsTime. Anything else reports false.
func NormalizeDate(v interface{}, loc *time.Location) (t time.Time, ok bool) {
	if loc == nil {
		loc = time.Local
	}
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Warn("date normalization panicked", zap.Any("recover", r))
			t, ok = time.Time{}, false
		}
	}()

	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return inLocation(d, loc)
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return inLocation(*d, loc)
	case string:
		return parseDateString(d, loc)
	case primitive.DateTime:
		return inLocation(d.Time(), loc)
	case primitive.Timestamp:
		if d.T == 0 {
			return time.Time{}, false
		}
		return inLocation(time.Unix(int64(d.T), 0), loc)
	case map[string]interface{}:
		return fromEpochFields(d, loc)
	case bson.M:
		return fromEpochFields(d, loc)
	case bson.D:
		fields := make(map[string]interface{}, len(d))
		for _, e := range d {
			fields[e.Key] = e.Value
		}
		return fromEpochFields(fields, loc)
	case dateConverter:
		return inLocation(d.ToDate(), loc)
	case timeConverter:
		return inLocation(d.AsTime(), loc)
	}
	return time.Time{}, false
}

func inLocation(t time.Time, loc *time.Location) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	return t.In(loc), true
}

func parseDateString(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return inLocation(t, loc)
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return inLocation(t, loc)
		}
	}
	return time.Time{}, false
}

func fromEpochFields(fields map[string]interface{}, loc *time.Location) (time.Time, bool) {
	secs, ok := firstNumber(fields, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := firstNumber(fields, "nanoseconds", "_nanoseconds")
	return inLocation(time.Unix(secs, nanos), loc)
}

func firstNumber(fields map[string]interface{}, keys ...string) (int64, bool) {
	for _, k := range keys {
		if v, exists := fields[k]; exists {
			return toInt64(v)
		}
	}
	return 0, false
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}

// ParseClock parses a time of day such as "09:30", "09:30:00", "9.30", "9:30 AM" or "3PM".
func ParseClock(s string) (models.Clock, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return models.Clock{}, false
	}

	meridiem := ""
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		meridiem = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}
	s = strings.ReplaceAll(s, ".", ":")

	parts := strings.Split(s, ":")
	if len(parts) > 3 || (len(parts) < 2 && meridiem == "") {
		return models.Clock{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return models.Clock{}, false
		}
		nums[i] = n
	}
	h, m, sec := nums[0], nums[1], nums[2]
	if m > 59 || sec > 59 {
		return models.Clock{}, false
	}

	switch meridiem {
	case "":
		if h > 23 {
			return models.Clock{}, false
		}
	default:
		if h < 1 || h > 12 {
			return models.Clock{}, false
		}
		if h == 12 {
			h = 0
		}
		if meridiem == "PM" {
			h += 12
		}
	}
	return models.Clock{Hour: h, Minute: m, Second: sec}, true
}
