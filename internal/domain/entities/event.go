package entities

import "time"

// Fixed defaults applied to every imported event draft.
const (
	EventDocType      = "event"
	EventTypeParty    = "Party"
	EventTypeFestival = "Festival"
	EventTypeCongress = "Congress"

	DefaultDurationMinutes = 60
)

// EventDraft is the assembled output of an import. The caller decides whether
// to persist it; assembly itself never writes an event.
type EventDraft struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Cover         string            `json:"cover"`
	StartDate     EpochMillis       `json:"startDate"`
	EndDate       EpochMillis       `json:"endDate"`
	Venue         *VenuePlace       `json:"venue,omitempty"`
	Place         string            `json:"place,omitempty"`
	Link          string            `json:"link"`
	Facebook      string            `json:"facebook"`
	Type          string            `json:"type"`
	Visibility    string            `json:"visibility"`
	Form          string            `json:"form"`
	Online        string            `json:"online"`
	International string            `json:"international"`
	Claimed       string            `json:"claimed"`
	EventType     string            `json:"eventType"`
	Duration      int               `json:"duration"`
	Price         string            `json:"price"`
	Styles        map[string]bool   `json:"styles"`
	Artists       []string          `json:"artists"`
	Org           *OrganizerProfile `json:"org"`
	Program       []ProgramEntry    `json:"program"`
	Watch         WatchList         `json:"watch"`
}

// ProgramEntry is one item of an event's program.
type ProgramEntry struct {
	Title    string `json:"title"`
	Artist   string `json:"artist,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

// WatchList tracks users watching an event.
type WatchList struct {
	Count     int      `json:"count"`
	Usernames []string `json:"usernames"`
}

// Event is a persisted event draft.
type Event struct {
	EventDraft
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Participation roles a profile can have in an event, as reported by the
// catalog queries.
const (
	RoleOrganiser    = "Organiser"
	RoleVenue        = "Venue"
	RoleSpecialGuest = "Special Guest"
)

// CatalogEntry is an event annotated with the queried profile's role in it.
type CatalogEntry struct {
	Event
	Role string `json:"role,omitempty"`
}
