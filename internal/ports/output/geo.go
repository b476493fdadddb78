package output

import (
	"context"

	"dancehub/internal/domain/entities"
)

// Geocoder resolves a free-text query to a normalized place.
// It returns domain.ErrPlaceNotFound when nothing matches.
type Geocoder interface {
	Locate(ctx context.Context, query string) (*entities.VenuePlace, error)
}

// CityDirectory maps a geocoded venue to the platform's canonical city
// identifier. An empty identifier means the venue belongs to no known city.
type CityDirectory interface {
	CityID(ctx context.Context, venue *entities.VenuePlace) (string, error)
}
