package tasks

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

func TestNewBookingRequestTask(t *testing.T) {
	req := models.BookingRequest{
		ID:           "req-1",
		OfferingID:   "wreaths",
		OfferingKind: models.KindWorkshop,
		OccurrenceID: "wreaths-2026-10-21-0",
		Quantity:     2,
		TotalPrice:   900,
		Status:       "submitted",
		CreatedAt:    time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}

	task, opts, err := NewBookingRequestTask(req)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingRequest, task.Type())

	types := map[asynq.OptionType]interface{}{}
	for _, o := range opts {
		types[o.Type()] = o.Value()
	}
	assert.Equal(t, "req-1", types[asynq.TaskIDOpt])
	assert.Equal(t, QueueBookings, types[asynq.QueueOpt])

	got, err := ParseBookingRequest(task)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestParseBookingRequest_Invalid(t *testing.T) {
	_, err := ParseBookingRequest(asynq.NewTask(TypeBookingRequest, []byte("{")))
	assert.Error(t, err)
}
