package repository

import (
	bookingRepo "github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database/repository/booking"
	offeringRepo "github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database/repository/offering"
)

// Re-export the OfferingRepository interface and constructor.
type OfferingRepository = offeringRepo.OfferingRepository

var NewMongoOfferingRepo = offeringRepo.NewMongoOfferingRepo

// Re-export the BookingRequestRepository interface and constructor.
type BookingRequestRepository = bookingRepo.BookingRequestRepository

var NewMongoBookingRequestRepo = bookingRepo.NewMongoBookingRequestRepo

// EnsureIndexes creates the indexes of every repository.
func EnsureIndexes(offerings OfferingRepository, requests BookingRequestRepository) error {
	if err := offerings.EnsureIndexes(); err != nil {
		return err
	}
	return requests.EnsureIndexes()
}
