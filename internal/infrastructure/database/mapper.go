package database

import (
	"encoding/json"
	"time"

	"dancehub/internal/domain/entities"
)

// The full draft lives in the JSONB data column; the extracted columns
// (org_username, venue_place_id, place, start_date, event_type) exist only
// for querying.

func marshalDraft(draft *entities.EventDraft) ([]byte, error) {
	return json.Marshal(draft)
}

func orgUsername(draft *entities.EventDraft) string {
	if draft.Org == nil {
		return ""
	}
	return draft.Org.Username
}

func venuePlaceID(draft *entities.EventDraft) string {
	if draft.Venue == nil {
		return ""
	}
	return draft.Venue.PlaceID
}

// startDateMillis returns the start date as nullable epoch millis.
func startDateMillis(draft *entities.EventDraft) *int64 {
	if !draft.StartDate.Set {
		return nil
	}
	millis := draft.StartDate.Millis
	return &millis
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*entities.Event, error) {
	var (
		id                   string
		data                 []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &data, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var draft entities.EventDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &entities.Event{
		EventDraft: draft,
		ID:         id,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
