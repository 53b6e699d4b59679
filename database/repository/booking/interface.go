package bookingRepo

import (
	"context"
	"errors"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("booking request not found")
	ErrDuplicate = errors.New("booking request already stored")
)

type BookingRequestRepository interface {
	Create(ctx context.Context, req models.BookingRequest) error
	GetByID(ctx context.Context, id string) (*models.BookingRequest, error)
	EnsureIndexes() error
}

type mongoBookingRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRequestRepo constructs a new MongoDB BookingRequestRepository.
func NewMongoBookingRequestRepo() BookingRequestRepository {
	return &mongoBookingRequestRepo{
		coll: database.Database().Collection("bookingRequests"),
	}
}
