package booking

import (
	"context"
	"sync"
	"time"

	offeringRepo "github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database/repository/offering"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

type fakeOfferings struct {
	byKind map[models.OfferingKind][]models.Offering
}

func (f *fakeOfferings) GetByID(_ context.Context, kind models.OfferingKind, id string) (*models.Offering, error) {
	for _, o := range f.byKind[kind] {
		if o.ID == id {
			o.Kind = kind
			return &o, nil
		}
	}
	return nil, offeringRepo.ErrNotFound
}

func (f *fakeOfferings) ListPublished(_ context.Context, kind models.OfferingKind) ([]models.Offering, error) {
	var out []models.Offering
	for _, o := range f.byKind[kind] {
		if o.IsPublished() {
			o.Kind = kind
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOfferings) EnsureIndexes() error { return nil }

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]models.SelectionSession
	ttl      time.Duration
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]models.SelectionSession{}}
}

func (f *fakeSessions) Save(_ context.Context, s models.SelectionSession, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.ID] = s
	f.ttl = ttl
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*models.SelectionSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

type fakeQueue struct {
	mu       sync.Mutex
	enqueued []models.BookingRequest
	err      error
}

func (f *fakeQueue) Enqueue(_ context.Context, req models.BookingRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, req)
	return nil
}
