package output

import (
	"context"
	"time"

	"dancehub/internal/domain/entities"
)

// EventRepository persists accepted event drafts and serves catalog queries.
type EventRepository interface {
	Create(ctx context.Context, draft *entities.EventDraft) (string, error)
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindOrganisedBy(ctx context.Context, username string) ([]entities.CatalogEntry, error)
	FindAtVenue(ctx context.Context, venuePlaceID string) ([]entities.CatalogEntry, error)
	FindInPlace(ctx context.Context, placeID string, startingAfter time.Time) ([]entities.Event, error)
	FindFestivals(ctx context.Context) ([]entities.Event, error)
}
