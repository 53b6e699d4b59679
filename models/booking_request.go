package models

import "time"

// BookingContact is the customer section of the booking form.
type BookingContact struct {
	Name  string `bson:"name" json:"name" binding:"required"`
	Email string `bson:"email" json:"email" binding:"required,email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// BookingRequest is the payload handed to the booking submission queue.
type BookingRequest struct {
	ID              string         `bson:"id" json:"id"`
	OfferingID      string         `bson:"offeringId" json:"offeringId"`
	OfferingKind    OfferingKind   `bson:"offeringKind" json:"offeringKind"`
	OfferingTitle   string         `bson:"offeringTitle" json:"offeringTitle"`
	Location        string         `bson:"location,omitempty" json:"location,omitempty"`
	OccurrenceID    string         `bson:"occurrenceId" json:"occurrenceId"`
	OccurrenceStart string         `bson:"occurrenceStart" json:"occurrenceStart"` // RFC3339
	OccurrenceLabel string         `bson:"occurrenceLabel" json:"occurrenceLabel"`
	Capacity        *int           `bson:"capacity" json:"capacity"`
	UnitPrice       float64        `bson:"unitPrice" json:"unitPrice"`
	Currency        string         `bson:"currency" json:"currency"`
	Quantity        int            `bson:"quantity" json:"quantity"`
	TotalPrice      float64        `bson:"totalPrice" json:"totalPrice"`
	Customer        BookingContact `bson:"customer" json:"customer"`
	Status          string         `bson:"status" json:"status"` // "submitted", "received"
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
}
