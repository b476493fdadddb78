package entities

import "time"

// Profile type and status values used by the platform.
const (
	ProfileTypeOrganiser = "Organiser"
	ProfileTypeCity      = "City"

	ImportRequested = "requested"

	VisibilityPublic = "Public"
)

// OrganizerProfile is the organizing entity attached to an imported event.
//
// Two shapes share this struct. A profile resolved from the search index
// carries ID, Username, Name, Photo, Bio and the social handles, all defaulted
// to the empty string when the hit lacks them. A pending profile built from
// scraped host data carries the admin fields instead (Type, Owned, Owner,
// Import, Visibility, Place); those are pointers or omitempty so they never
// leak into the resolved shape. A pending profile's store-generated id is not
// attached to the returned value, only ever written.
type OrganizerProfile struct {
	ID        string `json:"id,omitempty"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Bio       string `json:"bio,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`

	Type       string  `json:"type,omitempty"`
	Owned      *bool   `json:"owned,omitempty"`
	Owner      *string `json:"owner,omitempty"`
	Import     string  `json:"import,omitempty"`
	Visibility string  `json:"visibility,omitempty"`
	Place      string  `json:"place,omitempty"`
}

// Pending reports whether the profile is an auto-created import awaiting claim.
func (p *OrganizerProfile) Pending() bool {
	return p.Import == ImportRequested
}

// NewPendingProfile builds the profile record written for an unknown organizer.
func NewPendingProfile(host Host, username, cityID string) *OrganizerProfile {
	owned := false
	owner := ""
	return &OrganizerProfile{
		Name:       host.Name,
		Facebook:   host.URL,
		Photo:      host.PhotoURI,
		Username:   username,
		Type:       ProfileTypeOrganiser,
		Owned:      &owned,
		Owner:      &owner,
		Import:     ImportRequested,
		Visibility: VisibilityPublic,
		Place:      cityID,
	}
}

// CityProfile is the stored record for one of the platform's recognized metro
// regions. Its PlaceID doubles as the canonical city identifier.
type CityProfile struct {
	ID        string
	Username  string
	Name      string
	PlaceID   string
	CreatedAt time.Time
}
