package input

import (
	"context"

	"dancehub/internal/domain/entities"
)

// EventCatalog exposes the platform's event queries and draft persistence.
type EventCatalog interface {
	CreateEvent(ctx context.Context, draft *entities.EventDraft) (string, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	EventsOrganisedBy(ctx context.Context, username string) ([]entities.CatalogEntry, error)
	EventsAtVenue(ctx context.Context, venuePlaceID string) ([]entities.CatalogEntry, error)
	UpcomingEventsInPlace(ctx context.Context, placeID string) ([]entities.Event, error)
	Festivals(ctx context.Context) ([]entities.Event, error)
}
