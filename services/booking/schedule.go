package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	offeringRepo "github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database/repository/offering"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/calendar"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/scheduling"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"
)

var tracer = otel.Tracer("github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/booking")

// GetSchedule returns the offering with its sessions for the rest of the month and
// the day that should be open when the page loads.
func (s *DefaultBookingService) GetSchedule(ctx context.Context, kind models.OfferingKind, id string) (*models.ScheduleView, error) {
	ctx, span := tracer.Start(ctx, "booking.GetSchedule")
	defer span.End()
	span.SetAttributes(attribute.String("offering.kind", string(kind)), attribute.String("offering.id", id))

	o, groups, err := s.buildSchedule(ctx, kind, id, s.now())
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	sel := scheduling.InitialSelection(groups, o.PrimarySessionID)
	view := scheduleView(o, groups, sel)
	return &view, nil
}

// ListSchedules summarizes every published offering of a kind. Offerings are
// expanded concurrently; the result keeps the repository order.
func (s *DefaultBookingService) ListSchedules(ctx context.Context, kind models.OfferingKind) ([]models.ScheduleSummary, error) {
	ctx, span := tracer.Start(ctx, "booking.ListSchedules")
	defer span.End()
	span.SetAttributes(attribute.String("offering.kind", string(kind)))

	offerings, err := s.Offerings.ListPublished(ctx, kind)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	now := s.now()
	summaries := make([]models.ScheduleSummary, len(offerings))
	var wg sync.WaitGroup
	for i := range offerings {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o := s.withDefaults(offerings[i])
			summaries[i] = summarize(o, scheduling.Expand(o, now))
		}(i)
	}
	wg.Wait()

	span.SetAttributes(attribute.Int("offering.count", len(summaries)))
	return summaries, nil
}

// GetCalendar renders the upcoming sessions of an offering as an iCalendar feed.
func (s *DefaultBookingService) GetCalendar(ctx context.Context, kind models.OfferingKind, id string) (string, error) {
	ctx, span := tracer.Start(ctx, "booking.GetCalendar")
	defer span.End()

	o, err := s.loadOffering(ctx, kind, id)
	if err != nil {
		recordError(span, err)
		return "", err
	}
	now := s.now()
	return calendar.BuildFeed(*o, scheduling.Expand(*o, now), now), nil
}

func (s *DefaultBookingService) loadOffering(ctx context.Context, kind models.OfferingKind, id string) (*models.Offering, error) {
	o, err := s.Offerings.GetByID(ctx, kind, id)
	if errors.Is(err, offeringRepo.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOfferingNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if !o.IsPublished() {
		s.logger().Debug("offering not published", zap.String("offeringID", id), zap.String("status", o.Status))
		return nil, fmt.Errorf("%w: %s", ErrOfferingNotFound, id)
	}
	withDefaults := s.withDefaults(*o)
	return &withDefaults, nil
}

// buildSchedule loads an offering and regenerates its day groups relative to now.
func (s *DefaultBookingService) buildSchedule(ctx context.Context, kind models.OfferingKind, id string, now time.Time) (*models.Offering, []models.DayGroup, error) {
	o, err := s.loadOffering(ctx, kind, id)
	if err != nil {
		return nil, nil, err
	}
	groups := scheduling.GroupByDay(scheduling.Expand(*o, now))
	if len(groups) == 0 {
		s.logger().Debug("no sessions this month", zap.String("offeringID", id), zap.Time("now", now))
	}
	return o, groups, nil
}

func (s *DefaultBookingService) withDefaults(o models.Offering) models.Offering {
	if o.Currency == "" {
		o.Currency = s.Currency
	}
	return o
}

func (s *DefaultBookingService) now() time.Time {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return now
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func scheduleView(o *models.Offering, groups []models.DayGroup, sel *scheduling.Selection) models.ScheduleView {
	if groups == nil {
		groups = []models.DayGroup{}
	}
	return models.ScheduleView{
		Offering:  *o,
		Days:      groups,
		Selection: sel.State(),
		Empty:     len(groups) == 0,
	}
}

func summarize(o models.Offering, occurrences []models.Occurrence) models.ScheduleSummary {
	summary := models.ScheduleSummary{Offering: o.Meta()}
	for i := range occurrences {
		if occurrences[i].IsPast {
			continue
		}
		if summary.NextSession == nil {
			next := occurrences[i]
			summary.NextSession = &next
		}
		summary.SessionCount++
	}
	return summary
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
