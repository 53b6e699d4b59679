package booking

import (
	"context"
	"time"

	offeringRepo "github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database/repository/offering"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"

	"go.uber.org/zap"
)

// BookingService drives the storefront's schedule pages: it regenerates occurrences
// on every read, keeps each visitor's day/slot selection and submits booking requests.
type BookingService interface {
	GetSchedule(ctx context.Context, kind models.OfferingKind, id string) (*models.ScheduleView, error)
	ListSchedules(ctx context.Context, kind models.OfferingKind) ([]models.ScheduleSummary, error)
	GetCalendar(ctx context.Context, kind models.OfferingKind, id string) (string, error)

	StartSession(ctx context.Context, kind models.OfferingKind, id string) (*models.SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionView, error)
	SelectDay(ctx context.Context, sessionID, date string) (*models.SessionView, error)
	SelectSlot(ctx context.Context, sessionID, occurrenceID string) (*models.SessionView, error)
	SubmitBooking(ctx context.Context, sessionID string, quantity int, contact models.BookingContact) (*models.BookingRequest, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// SessionStore keeps selection sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session models.SelectionSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.SelectionSession, error)
	Delete(ctx context.Context, id string) error
}

// BookingQueue hands assembled requests to the submission pipeline.
type BookingQueue interface {
	Enqueue(ctx context.Context, req models.BookingRequest) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Offerings  offeringRepo.OfferingRepository
	Sessions   SessionStore
	Queue      BookingQueue
	SessionTTL time.Duration
	Location   *time.Location   // display timezone; occurrences are generated in it
	Currency   string           // used when an offering carries none
	Now        func() time.Time // injectable clock
	Logger     *zap.Logger
}
