package models

import "time"

// OfferingKind distinguishes the bookable product lines of the storefront.
type OfferingKind string

const (
	KindWorkshop  OfferingKind = "workshop"
	KindCutFlower OfferingKind = "cutFlower"
)

// Offering is a workshop or cut-flower farm session as stored in the document database.
// The schedule fields are kept in their raw stored shape; they are normalized by the
// scheduling engine on every read.
type Offering struct {
	ID               string       `bson:"id" json:"id"`
	Kind             OfferingKind `bson:"kind,omitempty" json:"kind"`
	Title            string       `bson:"title" json:"title"`
	Description      string       `bson:"description,omitempty" json:"description,omitempty"`
	Status           string       `bson:"status" json:"status"` // "published", "draft", "archived"
	Price            float64      `bson:"price" json:"price"`   // per seat
	Currency         string       `bson:"currency,omitempty" json:"currency,omitempty"`
	Capacity         *int         `bson:"capacity,omitempty" json:"capacity,omitempty"` // fallback seats per occurrence
	Location         string       `bson:"location,omitempty" json:"location,omitempty"`
	PrimarySessionID string       `bson:"primarySessionId,omitempty" json:"primarySessionId,omitempty"`

	ScheduledFor interface{}   `bson:"scheduledFor,omitempty" json:"-"` // anchor date, any stored shape
	RepeatWeekly bool          `bson:"repeatWeekly" json:"repeatWeekly"`
	RepeatDays   []int         `bson:"repeatDays,omitempty" json:"repeatDays,omitempty"` // 0=Sunday..6=Saturday
	Dates        []interface{} `bson:"dates,omitempty" json:"-"`                         // explicit session dates
	TimeSlots    []RawSlot     `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

// OfferingMeta is the display metadata copied onto a booking request.
type OfferingMeta struct {
	ID       string       `json:"id"`
	Kind     OfferingKind `json:"kind"`
	Title    string       `json:"title"`
	Price    float64      `json:"price"`
	Currency string       `json:"currency"`
	Capacity *int         `json:"capacity,omitempty"`
	Location string       `json:"location,omitempty"`
}

// Meta returns the booking-facing metadata of the offering.
func (o Offering) Meta() OfferingMeta {
	return OfferingMeta{
		ID:       o.ID,
		Kind:     o.Kind,
		Title:    o.Title,
		Price:    o.Price,
		Currency: o.Currency,
		Capacity: o.Capacity,
		Location: o.Location,
	}
}

// IsPublished reports whether the offering may be shown and booked.
func (o Offering) IsPublished() bool {
	return o.Status == "" || o.Status == "published"
}

// kindSlugs maps URL path segments to offering kinds.
var kindSlugs = map[string]OfferingKind{
	"workshops":   KindWorkshop,
	"cut-flowers": KindCutFlower,
}

// ParseOfferingKind resolves a URL slug ("workshops", "cut-flowers").
func ParseOfferingKind(slug string) (OfferingKind, bool) {
	kind, ok := kindSlugs[slug]
	return kind, ok
}
