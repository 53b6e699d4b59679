package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

// Create stores a booking request. A request id that is already stored reports
// ErrDuplicate so redelivered queue tasks can be acknowledged.
func (r *mongoBookingRequestRepo) Create(ctx context.Context, req models.BookingRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert booking request %s: %w", req.ID, err)
	}
	return nil
}

func (r *mongoBookingRequestRepo) GetByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var req models.BookingRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking request %s: %w", id, err)
	}
	return &req, nil
}
