package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/scheduling"
)

// activeSession is a stored session replayed against freshly generated groups.
type activeSession struct {
	session   *models.SelectionSession
	offering  *models.Offering
	groups    []models.DayGroup
	selection *scheduling.Selection
	now       time.Time
}

// StartSession opens a selection session seeded with the initial day and slot.
func (s *DefaultBookingService) StartSession(ctx context.Context, kind models.OfferingKind, id string) (*models.SessionView, error) {
	ctx, span := tracer.Start(ctx, "booking.StartSession")
	defer span.End()

	now := s.now()
	o, groups, err := s.buildSchedule(ctx, kind, id, now)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	sel := scheduling.InitialSelection(groups, o.PrimarySessionID)
	session := models.SelectionSession{
		ID:         uuid.New().String(),
		Kind:       kind,
		OfferingID: o.ID,
		State:      sel.State(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Sessions.Save(ctx, session, s.SessionTTL); err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("session.id", session.ID))

	s.logger().Info("selection session started",
		zap.String("sessionID", session.ID),
		zap.String("offeringID", o.ID),
		zap.String("selectedDate", session.State.SelectedDate))
	return sessionView(session.ID, o, groups, sel), nil
}

// GetSession returns the current state of a session. A stored selection that no
// longer exists in the schedule is replaced and persisted.
func (s *DefaultBookingService) GetSession(ctx context.Context, sessionID string) (*models.SessionView, error) {
	a, err := s.restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if a.selection.State() != a.session.State {
		if err := s.persist(ctx, a); err != nil {
			return nil, err
		}
	}
	return sessionView(a.session.ID, a.offering, a.groups, a.selection), nil
}

// SelectDay opens a day; its first upcoming session becomes the selected slot.
func (s *DefaultBookingService) SelectDay(ctx context.Context, sessionID, date string) (*models.SessionView, error) {
	ctx, span := tracer.Start(ctx, "booking.SelectDay")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", sessionID), attribute.String("date", date))

	a, err := s.restore(ctx, sessionID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	if err := a.selection.SelectDay(date); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, a); err != nil {
		recordError(span, err)
		return nil, err
	}
	return sessionView(a.session.ID, a.offering, a.groups, a.selection), nil
}

// SelectSlot picks a session of the open day.
func (s *DefaultBookingService) SelectSlot(ctx context.Context, sessionID, occurrenceID string) (*models.SessionView, error) {
	ctx, span := tracer.Start(ctx, "booking.SelectSlot")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", sessionID), attribute.String("occurrence.id", occurrenceID))

	a, err := s.restore(ctx, sessionID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	if err := a.selection.SelectSlot(occurrenceID); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, a); err != nil {
		recordError(span, err)
		return nil, err
	}
	return sessionView(a.session.ID, a.offering, a.groups, a.selection), nil
}

// SubmitBooking turns the selected session into a booking request and queues it.
// Nothing is queued unless the selection resolves to an upcoming session. The
// selection session is closed once the request is queued.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, sessionID string, quantity int, contact models.BookingContact) (*models.BookingRequest, error) {
	ctx, span := tracer.Start(ctx, "booking.SubmitBooking")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", sessionID), attribute.Int("quantity", quantity))

	a, err := s.restore(ctx, sessionID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	var occ *models.Occurrence
	if o, ok := a.selection.Selected(); ok {
		occ = &o
	}
	req, err := scheduling.AssembleBookingRequest(scheduling.BookingInput{
		State:      a.selection.State(),
		Occurrence: occ,
		Offering:   a.offering.Meta(),
		Quantity:   quantity,
		Customer:   contact,
	}, uuid.New().String(), a.now)
	if err != nil {
		s.logger().Info("booking request rejected",
			zap.String("sessionID", sessionID),
			zap.String("occurrenceID", a.selection.State().SelectedOccurrenceID),
			zap.Error(err))
		return nil, err
	}

	if err := s.Queue.Enqueue(ctx, req); err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("booking.id", req.ID))

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		// the request is already queued; an orphaned session just expires
		s.logger().Warn("failed to close selection session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	s.logger().Info("booking request queued",
		zap.String("bookingID", req.ID),
		zap.String("occurrenceID", req.OccurrenceID),
		zap.Int("quantity", req.Quantity))
	return &req, nil
}

// CancelSession drops a selection session.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	if _, err := s.Sessions.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultBookingService) restore(ctx context.Context, sessionID string) (*activeSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	o, groups, err := s.buildSchedule(ctx, session.Kind, session.OfferingID, now)
	if err != nil {
		return nil, err
	}
	sel, ok := scheduling.RestoreSelection(groups, session.State)
	if !ok {
		s.logger().Debug("stored selection no longer in schedule",
			zap.String("sessionID", sessionID),
			zap.String("selectedDate", session.State.SelectedDate))
	}
	return &activeSession{session: session, offering: o, groups: groups, selection: sel, now: now}, nil
}

func (s *DefaultBookingService) persist(ctx context.Context, a *activeSession) error {
	a.session.State = a.selection.State()
	a.session.UpdatedAt = a.now
	return s.Sessions.Save(ctx, *a.session, s.SessionTTL)
}

func sessionView(sessionID string, o *models.Offering, groups []models.DayGroup, sel *scheduling.Selection) *models.SessionView {
	view := &models.SessionView{
		SessionID: sessionID,
		Phase:     sel.Phase().String(),
		Schedule:  scheduleView(o, groups, sel),
	}
	if occ, ok := sel.Selected(); ok {
		view.Selected = &occ
	}
	return view
}
