package scheduling

import (
	"fmt"
	"math"
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

// BookingError is a rejection the storefront shows to the customer.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrNothingSelected    = &BookingError{Code: "nothingSelected", Message: "choose a session before booking"}
	ErrOccurrenceMismatch = &BookingError{Code: "selectionMismatch", Message: "the chosen session does not match the current selection"}
	ErrPastOccurrence     = &BookingError{Code: "pastOccurrence", Message: "this session has already started and can no longer be booked"}
	ErrInvalidQuantity    = &BookingError{Code: "invalidQuantity", Message: "book at least one seat"}
	ErrOverCapacity       = &BookingError{Code: "overCapacity", Message: "not enough seats in this session"}
)

// BookingInput is everything needed to assemble a booking request.
type BookingInput struct {
	State      models.SelectionState
	Occurrence *models.Occurrence
	Offering   models.OfferingMeta
	Quantity   int
	Customer   models.BookingContact
}

// AssembleBookingRequest packages the selected occurrence for the submission queue.
// No request is produced unless an upcoming occurrence matching the selection is given.
func AssembleBookingRequest(in BookingInput, requestID string, now time.Time) (models.BookingRequest, error) {
	occ := in.Occurrence
	if occ == nil || in.State.SelectedOccurrenceID == "" {
		return models.BookingRequest{}, ErrNothingSelected
	}
	if occ.ID != in.State.SelectedOccurrenceID || occ.Date != in.State.SelectedDate {
		return models.BookingRequest{}, ErrOccurrenceMismatch
	}
	if occ.IsPast {
		return models.BookingRequest{}, ErrPastOccurrence
	}
	if in.Quantity < 1 {
		return models.BookingRequest{}, ErrInvalidQuantity
	}

	capacity := occ.Capacity
	if capacity == nil {
		capacity = in.Offering.Capacity
	}
	if capacity != nil && in.Quantity > *capacity {
		return models.BookingRequest{}, ErrOverCapacity
	}

	req := models.BookingRequest{
		ID:              requestID,
		OfferingID:      in.Offering.ID,
		OfferingKind:    in.Offering.Kind,
		OfferingTitle:   in.Offering.Title,
		Location:        in.Offering.Location,
		OccurrenceID:    occ.ID,
		OccurrenceStart: occ.Start.Format(time.RFC3339),
		OccurrenceLabel: occ.Label,
		UnitPrice:       in.Offering.Price,
		Currency:        in.Offering.Currency,
		Quantity:        in.Quantity,
		TotalPrice:      math.Round(in.Offering.Price*float64(in.Quantity)*100) / 100,
		Customer:        in.Customer,
		Status:          "submitted",
		CreatedAt:       now,
	}
	if capacity != nil {
		c := *capacity
		req.Capacity = &c
	}
	return req, nil
}
