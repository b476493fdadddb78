package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
	"dancehub/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, draft *entities.EventDraft) (string, error) {
	id := uuid.NewString()

	data, err := marshalDraft(draft)
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}

	const q = `
INSERT INTO events (id, name, event_type, place, org_username, venue_place_id, start_date, data)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err = r.pool.Exec(ctx, q,
		id,
		draft.Name,
		draft.EventType,
		draft.Place,
		orgUsername(draft),
		venuePlaceID(draft),
		startDateMillis(draft),
		data,
	)
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	const q = `
SELECT id, data, created_at, updated_at
FROM events
WHERE id = $1;
`
	event, err := scanEvent(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return event, nil
}

// FindOrganisedBy returns events whose organizer carries username, annotated
// with the Organiser role.
func (r *EventRepository) FindOrganisedBy(ctx context.Context, username string) ([]entities.CatalogEntry, error) {
	const q = `
SELECT id, data, created_at, updated_at
FROM events
WHERE org_username = $1
ORDER BY start_date ASC NULLS LAST;
`
	return r.queryEntries(ctx, q, entities.RoleOrganiser, username)
}

// FindAtVenue returns events held at the venue with the given place id,
// annotated with the Venue role.
func (r *EventRepository) FindAtVenue(ctx context.Context, venuePlaceID string) ([]entities.CatalogEntry, error) {
	const q = `
SELECT id, data, created_at, updated_at
FROM events
WHERE venue_place_id = $1
ORDER BY start_date ASC NULLS LAST;
`
	return r.queryEntries(ctx, q, entities.RoleVenue, venuePlaceID)
}

// FindInPlace returns events in a city starting after the given instant.
func (r *EventRepository) FindInPlace(ctx context.Context, placeID string, startingAfter time.Time) ([]entities.Event, error) {
	const q = `
SELECT id, data, created_at, updated_at
FROM events
WHERE place = $1 AND start_date >= $2
ORDER BY start_date ASC;
`
	return r.queryEvents(ctx, q, placeID, startingAfter.UnixMilli())
}

// FindFestivals returns all festival and congress events sorted by start date.
func (r *EventRepository) FindFestivals(ctx context.Context) ([]entities.Event, error) {
	const q = `
SELECT id, data, created_at, updated_at
FROM events
WHERE event_type = ANY($1)
ORDER BY start_date ASC NULLS LAST;
`
	return r.queryEvents(ctx, q, []string{entities.EventTypeFestival, entities.EventTypeCongress})
}

func (r *EventRepository) queryEvents(ctx context.Context, q string, args ...any) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []entities.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (r *EventRepository) queryEntries(ctx context.Context, q, role string, args ...any) ([]entities.CatalogEntry, error) {
	events, err := r.queryEvents(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	entries := make([]entities.CatalogEntry, 0, len(events))
	for _, e := range events {
		entries = append(entries, entities.CatalogEntry{Event: e, Role: role})
	}
	return entries, nil
}
