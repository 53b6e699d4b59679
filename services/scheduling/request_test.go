package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

func bookingInput(t *testing.T, now time.Time) BookingInput {
	t.Helper()
	rule := models.RecurrenceRule{AnchorDate: wednesday}
	slots := BuildSlots([]models.RawSlot{
		{Time: "10:00", Capacity: intPtr(6)},
		{Time: "14:00", Label: "Afternoon"},
	}, time.Time{})
	s := NewSelection(GroupByDay(Generate("wk1", rule, slots, now)))
	require.NoError(t, s.SelectDay("2026-10-07"))
	occ, ok := s.Selected()
	require.True(t, ok)
	return BookingInput{
		State:      s.State(),
		Occurrence: &occ,
		Offering: models.OfferingMeta{
			ID:       "wk1",
			Kind:     models.KindWorkshop,
			Title:    "Wreath making",
			Price:    450.5,
			Currency: "ZAR",
			Location: "The barn",
		},
		Quantity: 2,
		Customer: models.BookingContact{Name: "Thandi", Email: "thandi@example.com"},
	}
}

func TestAssembleBookingRequest(t *testing.T) {
	now := at(wednesday, 8, 0)
	req, err := AssembleBookingRequest(bookingInput(t, now), "req-1", now)
	require.NoError(t, err)

	assert.Equal(t, "req-1", req.ID)
	assert.Equal(t, "wk1", req.OfferingID)
	assert.Equal(t, models.KindWorkshop, req.OfferingKind)
	assert.Equal(t, "wk1-2026-10-07-0", req.OccurrenceID)
	assert.Equal(t, "2026-10-07T10:00:00Z", req.OccurrenceStart)
	assert.Equal(t, "10:00", req.OccurrenceLabel)
	require.NotNil(t, req.Capacity)
	assert.Equal(t, 6, *req.Capacity)
	assert.Equal(t, 901.0, req.TotalPrice)
	assert.Equal(t, "ZAR", req.Currency)
	assert.Equal(t, "submitted", req.Status)
	assert.Equal(t, now, req.CreatedAt)
}

func TestAssembleBookingRequest_PastOccurrenceRejected(t *testing.T) {
	now := at(wednesday, 20, 0)
	in := bookingInput(t, now)
	require.True(t, in.Occurrence.IsPast)

	req, err := AssembleBookingRequest(in, "req-1", now)
	assert.ErrorIs(t, err, ErrPastOccurrence)
	assert.Equal(t, models.BookingRequest{}, req)

	var bookingErr *BookingError
	require.ErrorAs(t, err, &bookingErr)
	assert.Equal(t, "pastOccurrence", bookingErr.Code)
}

func TestAssembleBookingRequest_Rejections(t *testing.T) {
	now := at(wednesday, 8, 0)

	cases := []struct {
		name   string
		mutate func(in *BookingInput)
		want   error
	}{
		{"no occurrence", func(in *BookingInput) { in.Occurrence = nil }, ErrNothingSelected},
		{"no selection", func(in *BookingInput) { in.State = models.SelectionState{} }, ErrNothingSelected},
		{"other occurrence", func(in *BookingInput) { in.State.SelectedOccurrenceID = "wk1-2026-10-07-1" }, ErrOccurrenceMismatch},
		{"other day", func(in *BookingInput) { in.State.SelectedDate = "2026-10-08" }, ErrOccurrenceMismatch},
		{"zero seats", func(in *BookingInput) { in.Quantity = 0 }, ErrInvalidQuantity},
		{"over slot capacity", func(in *BookingInput) { in.Quantity = 7 }, ErrOverCapacity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := bookingInput(t, now)
			tc.mutate(&in)
			_, err := AssembleBookingRequest(in, "req-1", now)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAssembleBookingRequest_OfferingCapacityFallback(t *testing.T) {
	now := at(wednesday, 8, 0)
	in := bookingInput(t, now)
	in.Occurrence.Capacity = nil
	in.Offering.Capacity = intPtr(1)

	_, err := AssembleBookingRequest(in, "req-1", now)
	assert.ErrorIs(t, err, ErrOverCapacity)

	in.Offering.Capacity = nil
	req, err := AssembleBookingRequest(in, "req-1", now)
	require.NoError(t, err)
	assert.Nil(t, req.Capacity, "open booking")
}
