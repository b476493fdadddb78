package application

import (
	"context"
	"fmt"
	"time"

	"dancehub/internal/domain/entities"
	"dancehub/internal/ports/input"
	"dancehub/internal/ports/output"
)

var _ input.EventCatalog = (*CatalogService)(nil)

// CatalogService persists reviewed drafts and serves the platform's event
// queries. Persisting an imported draft is the caller's decision; the import
// pipeline never writes events itself.
type CatalogService struct {
	events output.EventRepository
}

func NewCatalogService(events output.EventRepository) *CatalogService {
	return &CatalogService{events: events}
}

func (s *CatalogService) CreateEvent(ctx context.Context, draft *entities.EventDraft) (string, error) {
	if draft.Org == nil {
		return "", fmt.Errorf("create event %q: draft has no organizer", draft.Name)
	}
	return s.events.Create(ctx, draft)
}

func (s *CatalogService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *CatalogService) EventsOrganisedBy(ctx context.Context, username string) ([]entities.CatalogEntry, error) {
	return s.events.FindOrganisedBy(ctx, username)
}

func (s *CatalogService) EventsAtVenue(ctx context.Context, venuePlaceID string) ([]entities.CatalogEntry, error) {
	return s.events.FindAtVenue(ctx, venuePlaceID)
}

func (s *CatalogService) UpcomingEventsInPlace(ctx context.Context, placeID string) ([]entities.Event, error) {
	return s.events.FindInPlace(ctx, placeID, time.Now())
}

func (s *CatalogService) Festivals(ctx context.Context) ([]entities.Event, error) {
	return s.events.FindFestivals(ctx)
}
