package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingRequest = "booking:request"
	QueueBookings      = "bookings"
)

// NewBookingRequestTask wraps a booking request for the submission queue. The request
// id doubles as the task id so a double submit is rejected by the queue.
func NewBookingRequestTask(req models.BookingRequest) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingRequest, b)
	opts := []asynq.Option{
		asynq.TaskID(req.ID),
		asynq.Queue(QueueBookings),
		asynq.MaxRetry(10),
	}
	return task, opts, nil
}

// ParseBookingRequest decodes the payload of a booking:request task.
func ParseBookingRequest(task *asynq.Task) (models.BookingRequest, error) {
	var req models.BookingRequest
	if err := json.Unmarshal(task.Payload(), &req); err != nil {
		return models.BookingRequest{}, fmt.Errorf("invalid %s payload: %w", TypeBookingRequest, err)
	}
	return req, nil
}

// AsynqBookingQueue submits booking requests through an asynq client.
type AsynqBookingQueue struct {
	Client *asynq.Client
}

func (q *AsynqBookingQueue) Enqueue(ctx context.Context, req models.BookingRequest) error {
	task, opts, err := NewBookingRequestTask(req)
	if err != nil {
		return err
	}
	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking request %s: %w", req.ID, err)
	}
	return nil
}
